// Code generated by hand. DO NOT EDIT.

package generated

func generated() int {
	x := 1
	{
		x := 2 // want "Variable 'x' shadows declaration on line 6"
		_ = x
	}

	return x
}
