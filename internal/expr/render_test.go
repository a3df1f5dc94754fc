package expr

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		e    *Evaluated
		want string
	}{
		{"leaf", leaf(42), "42"},
		{"negative leaf", leaf(-3), "-3"},
		{"simple add", Join(Add, leaf(1), leaf(2)), "1 + 2"},
		{"power", Join(Power, leaf(2), leaf(10)), "2 ^ 10"},
		{
			"looser child parenthesized",
			Join(Multiply, Join(Add, leaf(1), leaf(2)), leaf(3)),
			"(1 + 2) * 3",
		},
		{
			"tighter child unparenthesized",
			Join(Add, Join(Multiply, leaf(2), leaf(3)), leaf(4)),
			"2 * 3 + 4",
		},
		{
			"right operand of subtraction parenthesized",
			Join(Subtract, leaf(9), Join(Add, leaf(1), leaf(2))),
			"9 - (1 + 2)",
		},
		{
			"right operand of division parenthesized",
			Join(Divide, leaf(12), Join(Multiply, leaf(2), leaf(3))),
			"12 / (2 * 3)",
		},
		{
			"right operand of addition kept bare",
			Join(Add, leaf(7), Join(Subtract, leaf(5), leaf(2))),
			"7 + 5 - 2",
		},
		{
			"left subtraction chain kept bare",
			Join(Subtract, Join(Subtract, leaf(20), leaf(6)), leaf(4)),
			"20 - 6 - 4",
		},
		{
			"power base parenthesized",
			Join(Power, Join(Add, leaf(2), leaf(1)), leaf(2)),
			"(2 + 1) ^ 2",
		},
		{
			"power exponent parenthesized",
			Join(Power, leaf(2), Join(Add, leaf(1), leaf(2))),
			"2 ^ (1 + 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
