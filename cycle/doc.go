// Package cycle provides circular sequences: fixed lists read through a
// cursor that wraps back to the start.
//
// A [Queue] only moves forward. A [Circlet] can also step backward with
// [Circlet.Fore]. Both report when a full pass has completed:
//
//	degrees, _ := cycle.NewQueue(90.0, 330, 270)
//	for {
//	    d, _ := degrees.Next()
//	    use(d)
//	    if degrees.IsEnd() {
//	        break
//	    }
//	}
//
// Sequences are not safe for concurrent use.
package cycle
