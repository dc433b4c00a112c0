package timer

import (
	"time"

	"github.com/roylee0704/gron"
)

// Ticker calls Tick once per second on a gron schedule.
type Ticker struct {
	timer *Timer
	cron  *gron.Cron
}

func NewTicker(t *Timer) *Ticker {
	return &Ticker{timer: t}
}

func (k *Ticker) Start() {
	k.cron = gron.New()
	k.cron.AddFunc(gron.Every(time.Second), k.timer.Tick)
	k.cron.Start()
}

func (k *Ticker) Stop() {
	if k.cron != nil {
		k.cron.Stop()
	}
}
