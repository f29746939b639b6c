package predict

import "github.com/drakos74/go-ex-machina/xmath"

// Demo returns the fixed demonstration vectors classified after a training run.
func Demo() []xmath.Vector {
	return []xmath.Vector{
		{0.47889086, 0.15229675, 0.31082123, 0.03504317, 0.18920843, 0.47889086},
		{0.94963533, 0.5524256, 0.95758807, 0.95520434, 0.84890681, 0.94963533},
		{0.78797868, 0.67482528, 0.13625847, 0.34675372, 0.99871392, 0.78797868},
		{0.1349776, 0.59416669, 0.92579291, 0.41567412, 0.7358894, 0.1349776},
	}
}
