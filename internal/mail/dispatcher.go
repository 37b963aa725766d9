package mail

import "log"

// Dispatcher decouples mail delivery from the request path: Dispatch never
// blocks and errors never reach the caller.
type Dispatcher struct {
	mailer *Mailer
	queue  chan Message
}

func NewDispatcher(mailer *Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.mailer.Send(msg); err != nil {
			log.Println("mail error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		// Queue full: drop rather than block the request.
		log.Println("mail queue full, dropping message")
	}
}
