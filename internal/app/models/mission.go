package models

import "slices"

// Goal is one step of a mission.
type Goal struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Mission is a partner-run campaign with a checklist of goals.
type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Niche       Niche  `json:"niche"`
	Goals       []Goal `json:"goals"`
}

// Progress returns completed and total goal counts.
func (m *Mission) Progress() (done, total int) {
	for _, g := range m.Goals {
		if g.Completed {
			done++
		}
	}
	return done, len(m.Goals)
}

// PercentDone returns the share of completed goals from 0 to 100.
func (m *Mission) PercentDone() int {
	done, total := m.Progress()
	if total == 0 {
		return 0
	}
	return done * 100 / total
}

// Clone returns a deep copy.
func (m *Mission) Clone() *Mission {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Goals = slices.Clone(m.Goals)
	return &cp
}
