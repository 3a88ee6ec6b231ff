package stats

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

const separator = "----------------------------------------------------------------------"

// Recorder collects named statistics of a single run and prints them once.
type Recorder struct {
	mu     sync.Mutex
	values map[string]any
	once   sync.Once
	now    func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{
		values: make(map[string]any),
		now:    time.Now,
	}
}

// Put records value under key, overwriting any previous value.
func (recorder *Recorder) Put(key string, value any) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.values[key] = value
}

func (recorder *Recorder) Get(key string) (any, bool) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	value, ok := recorder.values[key]
	return value, ok
}

// Keys returns the recorded keys in lexicographic order.
func (recorder *Recorder) Keys() []string {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	keys := lo.Keys(recorder.values)
	slices.Sort(keys)
	return keys
}

// Timer starts measuring wall time for label. The returned function stops the
// measurement and records the elapsed duration; it is meant to be deferred so
// the duration is recorded on every exit path.
func (recorder *Recorder) Timer(label string) func() {
	start := recorder.now()
	return func() {
		recorder.Put(label, recorder.now().Sub(start))
	}
}

// Print writes all statistics to w. Only the first call writes anything.
func (recorder *Recorder) Print(w io.Writer) {
	recorder.once.Do(func() {
		var builder strings.Builder
		builder.WriteString(separator + "\n")
		for _, key := range recorder.Keys() {
			value, _ := recorder.Get(key)
			fmt.Fprintf(&builder, "BRUNCH_STAT %s %s\n", key, format(value))
		}
		builder.WriteString(separator + "\n")
		io.WriteString(w, builder.String())
	})
}

func format(value any) string {
	switch v := value.(type) {
	case time.Duration:
		return fmt.Sprintf("%.2f", v.Seconds())
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
