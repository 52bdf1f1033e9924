package logger

import (
	"strconv"
	"strings"
	"sync"
)

// ratioSampler lets through n of every d debug events. A zero ratio lets
// everything through.
type ratioSampler struct {
	mu   sync.Mutex
	n, d int
	seen int
}

func newRatioSampler(n, d int) *ratioSampler {
	s := &ratioSampler{}
	s.Set(n, d)
	return s
}

func (s *ratioSampler) Set(n, d int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = 0
	if n <= 0 || d <= 0 {
		s.n, s.d = 0, 0
		return
	}
	s.n, s.d = min(n, d), d
}

func (s *ratioSampler) Allow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.d == 0 {
		return true
	}
	s.seen = s.seen%s.d + 1
	return s.seen <= s.n
}

// parseRatioSpec reads "n/d" or a bare "d" meaning 1/d. Anything unparsable
// or non-positive yields 0/0.
func parseRatioSpec(spec string) (int, int) {
	spec = strings.TrimSpace(spec)
	num, den, found := strings.Cut(spec, "/")
	if !found {
		num, den = "1", spec
	}
	n, err1 := strconv.Atoi(strings.TrimSpace(num))
	d, err2 := strconv.Atoi(strings.TrimSpace(den))
	if err1 != nil || err2 != nil || d <= 0 {
		return 0, 0
	}
	return n, d
}
