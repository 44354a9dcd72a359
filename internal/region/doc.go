// Package region maintains generated regions inside companion files.
//
// A region is delimited by a begin marker naming an owning type and a
// generator kind, and an end marker:
//
//	#pragma region generated Foo Read
//	reader.Read(this->Count);
//	#pragma endregion
//
// Each pass plans a list of edits against the unmodified lines, then
// applies them once into a fresh buffer. A file is written only when at
// least one region changed, so re-running on unchanged input is a no-op.
package region
