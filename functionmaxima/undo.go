package functionmaxima

// undoList holds the compensations for the insertions a mutation has made so
// far. Compensations are structural removals and cannot fail.
type undoList struct {
	steps []func()
}

func (u *undoList) push(step func()) {
	u.steps = append(u.steps, step)
}

// rollback replays the compensations newest first.
func (u *undoList) rollback() {
	for idx := len(u.steps) - 1; idx >= 0; idx-- {
		u.steps[idx]()
	}

	u.steps = nil
}
