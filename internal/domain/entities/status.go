package entities

import (
	"fmt"
	"strings"
)

// FileStatus is the state of a file in the working directory.
type FileStatus int

const (
	FileStatusNew FileStatus = iota
	FileStatusCopied
	FileStatusModified
	FileStatusRenamed
	FileStatusDeleted
	FileStatusConflicted
)

var fileStatusNames = []string{"New", "Copied", "Modified", "Renamed", "Deleted", "Conflicted"} //nolint:gochecknoglobals // enum names

// String returns the status name, e.g. "Modified".
func (s FileStatus) String() string {
	if s >= 0 && int(s) < len(fileStatusNames) {
		return fileStatusNames[s]
	}
	return fmt.Sprintf("FileStatus(%d)", int(s))
}

// ParseFileStatus maps a status name back to its value, ignoring case.
func ParseFileStatus(name string) (FileStatus, error) {
	for i, candidate := range fileStatusNames {
		if strings.EqualFold(candidate, name) {
			return FileStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown file status: %q", name)
}

// MarshalText encodes the status by name.
func (s FileStatus) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(fileStatusNames) {
		return nil, fmt.Errorf("invalid file status: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *FileStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseFileStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// FileChange is a single changed file in the working directory.
type FileChange struct {
	// URI is the current location of the changed file.
	URI    string     `json:"uri"              yaml:"uri" toml:"uri"`
	Status FileStatus `json:"status"           yaml:"status" toml:"status"`
	// OldURI is the previous location, set for renames and copies.
	OldURI string `json:"oldUri,omitempty" yaml:"old_uri,omitempty" toml:"old_uri,omitempty"`
	Staged bool   `json:"staged,omitempty" yaml:"staged,omitempty" toml:"staged,omitempty"`
}

// AheadBehind counts commits relative to the upstream branch.
type AheadBehind struct {
	Ahead  int `json:"ahead"  yaml:"ahead" toml:"ahead"`
	Behind int `json:"behind" yaml:"behind" toml:"behind"`
}

// WorkingDirectoryStatus summarizes the state of a repository's working tree.
type WorkingDirectoryStatus struct {
	Exists         bool         `json:"exists"                   yaml:"exists" toml:"exists"`
	Changes        []FileChange `json:"changes"                  yaml:"changes" toml:"changes"`
	Branch         string       `json:"branch,omitempty"         yaml:"branch,omitempty" toml:"branch,omitempty"`
	UpstreamBranch string       `json:"upstreamBranch,omitempty" yaml:"upstream_branch,omitempty" toml:"upstream_branch,omitempty"`
	AheadBehind    *AheadBehind `json:"aheadBehind,omitempty"    yaml:"ahead_behind,omitempty" toml:"ahead_behind,omitempty"`
	CurrentHead    string       `json:"currentHead,omitempty"    yaml:"current_head,omitempty" toml:"current_head,omitempty"`
	// Incomplete is true when the status listing hit a limit and was cut short.
	Incomplete bool `json:"incomplete,omitempty" yaml:"incomplete,omitempty" toml:"incomplete,omitempty"`
}

// StagedChanges returns the changes marked as staged, in order.
func (s WorkingDirectoryStatus) StagedChanges() []FileChange {
	staged := make([]FileChange, 0, len(s.Changes))
	for _, change := range s.Changes {
		if change.Staged {
			staged = append(staged, change)
		}
	}
	return staged
}
