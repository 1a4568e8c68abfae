package game

// Observer receives published snapshots.
type Observer func(State)

// observers is a callback registry that caches the last published value,
// so a late subscriber starts from the current snapshot.
type observers struct {
	last   State
	nextID int
	subs   map[int]Observer
	order  []int // Delivery order is subscription order

	publishing bool
	pending    []State
}

func (o *observers) subscribe(fn Observer) func() {
	if o.subs == nil {
		o.subs = make(map[int]Observer)
	}
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	o.order = append(o.order, id)

	fn(o.last)

	return func() { o.remove(id) }
}

func (o *observers) remove(id int) {
	if _, ok := o.subs[id]; !ok {
		return
	}
	delete(o.subs, id)
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// publish delivers s to every observer. A publish made from inside an
// observer is queued, so each observer sees snapshots in publish order.
func (o *observers) publish(s State) {
	o.last = s
	o.pending = append(o.pending, s)
	if o.publishing {
		return
	}

	o.publishing = true
	defer func() { o.publishing = false }()
	for len(o.pending) > 0 {
		next := o.pending[0]
		o.pending = o.pending[1:]
		// Copy so an observer may unsubscribe during delivery.
		ids := append([]int(nil), o.order...)
		for _, id := range ids {
			if fn, ok := o.subs[id]; ok {
				fn(next)
			}
		}
	}
}
