package projection_test

import (
	"fmt"

	"regionsynth/internal/projection"
)

func Example() {
	c, err := projection.NewCatalog(projection.DefaultCatalogConfig())
	if err != nil {
		panic(err)
	}

	for _, native := range []string{"float", "std::string", "Quaternion"} {
		p, _ := c.Project(native, nil)
		fmt.Println(p.Wrapper, "<-", c.ToWrapper("x", p, "X"))
		fmt.Println(p.Native, "<-", c.FromWrapper("value", p))
	}
	// Output:
	// double <- (double)x
	// float <- (float)value
	// System::String^ <- gcnew System::String(x.c_str())
	// std::string <- msclr::interop::marshal_as<std::string>(value)
	// EditablePoint3 <- EditablePoint3::FromQuaternion(x)
	// Quaternion <- value.ToQuaternion()
}
