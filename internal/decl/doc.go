// Package decl extracts member and function declarations from header-like
// source files.
//
// The extractor is line oriented. It tracks the enclosing type and the
// current visibility section and recognizes a narrow subset of declaration
// syntax:
//
//	class Foo : public Base {      // type declaration
//	public:                        // visibility section
//	    float Speed;               // member
//	    Mesh* Mesh;                // pointer member
//	    virtual int Count() const; // function
//
// Key types:
//   - Declaration: sealed interface over Member and Function
//   - Visibility: public, private or protected
//   - Param: one function parameter in call-site order
package decl
