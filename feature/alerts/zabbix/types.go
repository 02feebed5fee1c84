package zabbix

import "time"

// ProblemRecord is the remote snapshot of one active problem. The monitoring
// API serializes numbers as strings; the `,string` tags undo that.
type ProblemRecord struct {
	EventID      int64  `json:"eventid,string"`
	Name         string `json:"name"`
	Severity     int    `json:"severity,string"`
	Clock        int64  `json:"clock,string"`
	Acknowledged int    `json:"acknowledged,string"`
	Hosts        []struct {
		HostID int64 `json:"hostid,string"`
	} `json:"hosts"`
}

// ExternalID returns the stable event id.
func (r *ProblemRecord) ExternalID() int64 { return r.EventID }

// Modified returns the problem's start time; problems are immutable apart
// from acknowledgement, which is out of scope here.
func (r *ProblemRecord) Modified() time.Time { return time.Unix(r.Clock, 0).UTC() }

// HostID returns the id of the first affected host, 0 when none is attached.
func (r *ProblemRecord) HostID() int64 {
	if len(r.Hosts) == 0 {
		return 0
	}
	return r.Hosts[0].HostID
}
