package snapshot

import "fmt"

// DecodeIssue is one snapshot row that was dropped as malformed. The rest
// of the file still decodes; only a file that cannot be read at all is a
// hard error.
type DecodeIssue struct {
	Entry  string
	Reason string
}

func (i DecodeIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Entry, i.Reason)
}
