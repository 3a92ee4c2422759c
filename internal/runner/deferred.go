package runner

// Deferred is a queue of callbacks scheduled against simulation time.
// Callbacks queued during a step never run in that same step: the game
// drains the queue at the start of the following step.
type Deferred struct {
	tasks []deferredTask
}

type deferredTask struct {
	name string
	due  float64
	fn   func(now float64)
}

// After schedules fn to run once simulation time reaches now+delay.
func (d *Deferred) After(now, delay float64, name string, fn func(now float64)) {
	if delay < 0 {
		delay = 0
	}
	d.tasks = append(d.tasks, deferredTask{name: name, due: now + delay, fn: fn})
}

// RunDue runs every callback whose due time has passed, in scheduling order,
// and returns how many ran. Callbacks scheduled by a running callback wait for
// the next call.
func (d *Deferred) RunDue(now float64) int {
	if len(d.tasks) == 0 {
		return 0
	}

	pending := d.tasks
	d.tasks = nil

	ran := 0
	for _, t := range pending {
		if t.due > now {
			d.tasks = append(d.tasks, t)
			continue
		}
		t.fn(now)
		ran++
	}
	return ran
}

// Pending returns the names of queued callbacks.
func (d *Deferred) Pending() []string {
	names := make([]string, len(d.tasks))
	for i, t := range d.tasks {
		names[i] = t.name
	}
	return names
}

// Len returns the number of queued callbacks.
func (d *Deferred) Len() int {
	return len(d.tasks)
}

// Clear drops all queued callbacks.
func (d *Deferred) Clear() {
	d.tasks = nil
}
