package domain

import (
	"strconv"
	"time"
)

// DebugInfo holds the timing of one stage of slot generation.
type DebugInfo struct {
	Event     string            `json:"event"`
	Timing    int64             `json:"timing"`
	Count     int               `json:"count"`
	StartTime time.Time         `json:"-"`
	Options   map[string]string `json:"options,omitempty"`
}

func NewDebugInfo(event string) DebugInfo {
	info := DebugInfo{Event: event}
	info.Start()
	return info
}

func (d *DebugInfo) Start() {
	d.StartTime = time.Now()
}

func (d *DebugInfo) Elapse() {
	d.Timing = time.Since(d.StartTime).Milliseconds()
}

func (d *DebugInfo) AddOption(key string, value string) {
	if d.Options == nil {
		d.Options = make(map[string]string)
	}
	d.Options[key] = value
}

// Summary flattens the timings into "event" -> "Nms/count" pairs for logging.
func Summary(infos []DebugInfo) map[string]string {
	summary := make(map[string]string, len(infos))
	for _, info := range infos {
		summary[info.Event] = strconv.FormatInt(info.Timing, 10) + "ms/" + strconv.Itoa(info.Count)
	}
	return summary
}
