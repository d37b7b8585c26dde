package main

type Task struct {
	ID       int64  `json:"id"`
	Task     string `json:"task"`
	Finished int    `json:"finished"` // 0 or 1, as the API encodes it
}

// Done reports the finished flag as a bool.
func (t Task) Done() bool {
	return t.Finished == 1
}

// Quote is the displayed form of a quote, after field normalization.
type Quote struct {
	Text   string
	Author string
}
