package projection

import (
	"fmt"
	"regexp"
)

// elemVar names the element inside container conversion lambdas.
const elemVar = "e"

var simpleExprRe = regexp.MustCompile(`^[A-Za-z_]\w*(?:(?:->|\.|::)[A-Za-z_]\w*)*$`)

// ToWrapper returns the expression that converts valueExpr, a value of
// p.Native, to p.Wrapper. fieldName names the member being projected; it
// is passed to the reference lookup so failures can name their source.
func (c *Catalog) ToWrapper(valueExpr string, p Projection, fieldName string) string {
	v := paren(valueExpr)

	switch p.Category {
	case CategoryBool, CategoryIntegral, CategoryFloating, CategoryEnum, CategoryOther:
		if p.IsIdentity() {
			return valueExpr
		}

		return cast(p.Wrapper, v)

	case CategoryTextual:
		return fmt.Sprintf("gcnew System::String(%s.c_str())", v)

	case CategoryVector3:
		return fmt.Sprintf("%s::FromVector(%s)", editablePoint, valueExpr)

	case CategoryQuaternion:
		return fmt.Sprintf("%s::FromQuaternion(%s)", editablePoint, valueExpr)

	case CategoryColor:
		return fmt.Sprintf("%s::FromArgb(%s.ToArgb())", managedColor, v)

	case CategoryReference:
		return fmt.Sprintf("safe_cast<%s>(%s(%s, %q))", p.Wrapper, c.lookup, valueExpr, fieldName)

	case CategoryContainer:
		elem := p.elem()

		return fmt.Sprintf("ProjectionUtil::ToList<%s>(%s, [](const %s& %s) { return %s; })",
			elem.Wrapper, valueExpr, elem.Native, elemVar, c.ToWrapper(elemVar, elem, fieldName))

	default:
		return valueExpr
	}
}

// FromWrapper returns the expression that converts valueExpr, a value of
// p.Wrapper, back to p.Native. It is the inverse of ToWrapper.
func (c *Catalog) FromWrapper(valueExpr string, p Projection) string {
	v := paren(valueExpr)

	switch p.Category {
	case CategoryBool, CategoryIntegral, CategoryFloating, CategoryEnum, CategoryOther:
		if p.IsIdentity() {
			return valueExpr
		}

		return cast(p.Native, v)

	case CategoryTextual:
		return fmt.Sprintf("msclr::interop::marshal_as<%s>(%s)", p.Native, valueExpr)

	case CategoryVector3:
		return v + ".ToVector()"

	case CategoryQuaternion:
		return v + ".ToQuaternion()"

	case CategoryColor:
		return fmt.Sprintf("%s::FromArgb(%s.ToArgb())", p.Native, v)

	case CategoryReference:
		return fmt.Sprintf("(%s != nullptr ? %s->Id : 0)", v, v)

	case CategoryContainer:
		elem := p.elem()

		return fmt.Sprintf("ProjectionUtil::ToVector<%s>(%s, [](%s %s) { return %s; })",
			elem.Native, valueExpr, elem.Wrapper, elemVar, c.FromWrapper(elemVar, elem))

	default:
		return valueExpr
	}
}

func (p Projection) elem() Projection {
	if p.Elem == nil {
		return Projection{Native: "auto", Wrapper: "auto", Category: CategoryOther}
	}

	return *p.Elem
}

func cast(to, v string) string {
	return "(" + to + ")" + v
}

// paren wraps composite expressions so postfix and cast operators bind to
// the whole value.
func paren(expr string) string {
	if simpleExprRe.MatchString(expr) {
		return expr
	}

	return "(" + expr + ")"
}
