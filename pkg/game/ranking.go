package game

import (
	"sort"
	"strconv"
	"strings"
)

const ScoresKey = "blockfall.top_scores"

// Ranking is the top-N list of final scores, kept in a Store as
// comma-separated integers under ScoresKey.
type Ranking struct {
	Max    int
	Scores []int

	store Store
}

func NewRanking(store Store, max int) *Ranking {
	r := &Ranking{Max: max, store: store}
	r.load()

	return r
}

func (r *Ranking) load() {
	r.Scores = r.Scores[:0]

	data, ok := r.store.Get(ScoresKey)
	if !ok || data == "" {
		return
	}

	for _, s := range strings.Split(data, ",") {
		score, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			continue
		}

		r.Scores = append(r.Scores, score)
	}

	r.trim()
}

func (r *Ranking) trim() {
	sort.Sort(sort.Reverse(sort.IntSlice(r.Scores)))

	if len(r.Scores) > r.Max {
		r.Scores = r.Scores[:r.Max]
	}
}

// AddScore records score and reports whether it made the list. Scores of zero
// or less are never recorded.
func (r *Ranking) AddScore(score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	r.Scores = append(r.Scores, score)
	r.trim()

	ranked := false
	for _, s := range r.Scores {
		if s == score {
			ranked = true
			break
		}
	}

	return ranked, r.save()
}

func (r *Ranking) save() error {
	values := make([]string, len(r.Scores))
	for i, s := range r.Scores {
		values[i] = strconv.Itoa(s)
	}

	return r.store.Set(ScoresKey, strings.Join(values, ","))
}

// Text lists the scores one per line, best first.
func (r *Ranking) Text() string {
	if len(r.Scores) == 0 {
		return "No Scores Yet"
	}

	var b strings.Builder
	for i, s := range r.Scores {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(strconv.Itoa(s))
		b.WriteRune('\n')
	}

	return b.String()
}
