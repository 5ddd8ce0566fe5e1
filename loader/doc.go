// Package loader reads campus walking-time data into a core.Graph.
//
// The input is line oriented. Every line containing
//
//	"<location>" -> "<location>" [seconds=<number>]
//
// contributes one directed edge: both locations are inserted as nodes
// (idempotently) and the edge is inserted with the parsed weight, replacing
// any earlier weight for the same pair. Location names may use letters,
// digits, spaces, '-' and '.'; the number is unsigned and may contain a
// decimal point. The match is a substring search, so DOT boilerplate such as
// "digraph campus {" or a trailing ';' is tolerated.
//
// Lines that do not match, or whose number does not parse, are skipped and
// counted in Report.Skipped. They are logged at debug level. Graph errors on
// a matched line are returned to the caller.
package loader
