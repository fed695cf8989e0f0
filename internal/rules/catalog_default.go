package rules

// DefaultFilters is the embedded strategy catalog: each entry used to be a
// hand-written function in earlier iterations of this system; here the
// whole set is one declarative table interpreted by the engine.
var DefaultFilters = []ContextFilter{
	{Name: "S0001", Constraints: []Constraint{
		{Signal: "VAR03", Low: 3.0, High: 12.0},
		{Signal: "VAR27", Low: 0.30, High: 0.60},
	}},
	{Name: "S0002", Constraints: []Constraint{
		{Signal: "VAR03", Low: 4.0, High: 20.0},
		{Signal: "VAR50", Low: 0.55, High: 1.10},
	}},
	{Name: "S0003", Constraints: []Constraint{
		{Signal: "VAR01", Low: 2.2, High: 6.0},
		{Signal: "VAR07", Low: 1.05, High: 1.80},
	}},
	{Name: "S0004", Constraints: []Constraint{
		{Signal: "VAR04", Low: 3.0, High: 15.0},
		{Signal: "VAR27", Low: 0.28, High: 0.65},
	}},
	{Name: "S0005", Constraints: []Constraint{
		{Signal: "VAR04", Low: 4.5, High: 25.0},
		{Signal: "VAR50", Low: 0.60, High: 1.20},
		{Signal: "VAR13", Low: 1.00, High: 2.20},
	}},
	{Name: "S0006", Constraints: []Constraint{
		{Signal: "VAR54", Low: -16.0, High: -8.0},
		{Signal: "VAR30", Low: 0.00, High: 0.12},
	}},
	{Name: "S0007", Constraints: []Constraint{
		{Signal: "VAR55", Low: -18.0, High: -9.0},
		{Signal: "VAR30", Low: 0.00, High: 0.15},
	}},
	{Name: "S0008", Constraints: []Constraint{
		{Signal: "VAR37", Low: 0.55, High: 0.95},
		{Signal: "VAR51", Low: 0.00, High: 0.10},
	}},
	{Name: "S0009", Constraints: []Constraint{
		{Signal: "VAR38", Low: 1.5, High: 8.0},
		{Signal: "VAR52", Low: 0.00, High: 0.12},
	}},
	{Name: "S0010", Constraints: []Constraint{
		{Signal: "VAR07", Low: 1.10, High: 1.60},
		{Signal: "VAR17", Low: 0.95, High: 1.40},
		{Signal: "VAR27", Low: 0.32, High: 0.70},
	}},
	{Name: "S0011", Constraints: []Constraint{
		{Signal: "VAR11", Low: 1.05, High: 1.55},
		{Signal: "VAR19", Low: 0.90, High: 1.35},
		{Signal: "VAR27", Low: 0.30, High: 0.68},
	}},
	{Name: "S0012", Constraints: []Constraint{
		{Signal: "VAR44", Low: 0.80, High: 1.05},
		{Signal: "VAR53", Low: 0.10, High: 0.45},
	}},
	{Name: "S0013", Constraints: []Constraint{
		{Signal: "VAR46", Low: 0.95, High: 1.25},
		{Signal: "VAR53", Low: 0.08, High: 0.40},
	}},
	{Name: "S0014", Constraints: []Constraint{
		{Signal: "VAR66", Low: 2.4, High: 4.2},
		{Signal: "VAR16", Low: 0.45, High: 0.75},
	}},
	{Name: "S0015", Constraints: []Constraint{
		{Signal: "VAR09", Low: 0.95, High: 1.35},
		{Signal: "VAR28", Low: 0.22, High: 0.48},
	}},
	{Name: "S0016", Constraints: []Constraint{
		{Signal: "VAR58", Low: -4.0, High: 0.0},
		{Signal: "VAR23", Low: 0.92, High: 1.12},
	}},
	{Name: "S0017", Constraints: []Constraint{
		{Signal: "VAR59", Low: -1.5, High: 2.5},
		{Signal: "VAR25", Low: 0.90, High: 1.15},
	}},
	{Name: "S0018", Constraints: []Constraint{
		{Signal: "VAR61", Low: -9.0, High: -3.0},
		{Signal: "VAR32", Low: 0.10, High: 0.35},
	}},
	{Name: "S0019", Constraints: []Constraint{
		{Signal: "VAR62", Low: -8.5, High: -2.5},
		{Signal: "VAR33", Low: 0.09, High: 0.33},
	}},
	{Name: "S0020", Constraints: []Constraint{
		{Signal: "VAR05", Low: 0.55, High: 0.95},
		{Signal: "VAR15", Low: 0.40, High: 0.70},
		{Signal: "VAR51", Low: 0.00, High: 0.08},
	}},
	{Name: "S0021", Constraints: []Constraint{
		{Signal: "VAR36", Low: 0.00, High: 0.06},
		{Signal: "VAR10", Low: 0.92, High: 1.10},
	}},
	{Name: "S0022", Constraints: []Constraint{
		{Signal: "VAR41", Low: 0.00, High: 0.10},
		{Signal: "VAR43", Low: 0.00, High: 0.10},
		{Signal: "VAR50", Low: 0.45, High: 0.95},
	}},
	{Name: "S0023", Constraints: []Constraint{
		{Signal: "VAR72", Low: 0.00, High: 0.18},
		{Signal: "VAR67", Low: 0.80, High: 1.10},
	}},
	{Name: "S0024", Constraints: []Constraint{
		{Signal: "VAR76", Low: 0.55, High: 0.85},
		{Signal: "VAR77", Low: 0.90, High: 1.25},
		{Signal: "VAR53", Low: 0.05, High: 0.35},
	}},
}
