// Package metadata signs run reports with a manifest block so a
// published dataset's artifacts can later be checked against the run
// that produced them.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	// TagStart is the start of the manifest block.
	TagStart = "<!-- MANIFEST_START"
	// TagEnd is the end of the manifest block.
	TagEnd = "MANIFEST_END -->"
)

// Manifest verification errors.
var (
	ErrNoManifestBlock  = errors.New("no manifest block found")
	ErrNoHashFound      = errors.New("no report hash found in manifest")
	ErrHashMismatch     = errors.New("report hash mismatch")
	ErrArtifactMismatch = errors.New("artifact digest mismatch")
)

// Manifest describes the run that produced a report and its artifacts.
type Manifest struct {
	RunID      string
	Generated  time.Time
	ReportHash string
	// Artifacts maps artifact labels (flat, full) to SHA-256 digests.
	Artifacts map[string]string
}

var manifestRegex = regexp.MustCompile(`(?s)<!--\s*MANIFEST_START\s*\n(.*?)\n\s*MANIFEST_END\s*-->`)

// Extract removes the manifest block from report content, returning the
// parsed manifest (nil if absent) and the clean content that the report
// hash covers.
func Extract(content string) (*Manifest, string) {
	match := manifestRegex.FindStringSubmatch(content)
	clean := strings.TrimRight(manifestRegex.ReplaceAllString(content, ""), "\n")

	if len(match) < 2 {
		return nil, clean
	}

	m := &Manifest{Artifacts: make(map[string]string)}

	for _, line := range strings.Split(match[1], "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "RUN_ID":
			m.RunID = val
		case "GENERATED":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				m.Generated = t
			}
		case "REPORT_HASH":
			m.ReportHash = val
		default:
			if strings.HasPrefix(key, "ARTIFACT_") {
				label := strings.ToLower(strings.TrimPrefix(key, "ARTIFACT_"))
				m.Artifacts[label] = val
			}
		}
	}

	return m, clean
}

// HashContent computes the SHA-256 hash of report content, excluding any
// manifest block it already carries.
func HashContent(content string) string {
	_, clean := Extract(content)
	sum := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(sum[:])
}

// HashFile computes the SHA-256 digest of a file on disk.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sign appends a manifest block to the report content, replacing any
// existing block. Artifact digests are recorded under stable labels so
// Verify can check the files independently of their paths.
func Sign(content, runID string, artifacts map[string]string) string {
	_, clean := Extract(content)

	now := time.Now().UTC().Format(time.RFC3339)

	var b strings.Builder

	b.WriteString(clean)
	fmt.Fprintf(&b, "\n\n%s\nRUN_ID: %s\nGENERATED: %s\nREPORT_HASH: %s\n", TagStart, runID, now, HashContent(clean))

	labels := make([]string, 0, len(artifacts))
	for label := range artifacts {
		labels = append(labels, label)
	}

	// Stable block layout regardless of map order.
	sort.Strings(labels)

	for _, label := range labels {
		fmt.Fprintf(&b, "ARTIFACT_%s: %s\n", strings.ToUpper(label), artifacts[label])
	}

	b.WriteString(TagEnd)

	return b.String()
}

// Verify checks report content against its embedded manifest.
func Verify(content string) (*Manifest, error) {
	m, clean := Extract(content)
	if m == nil {
		return nil, ErrNoManifestBlock
	}

	if m.ReportHash == "" {
		return nil, ErrNoHashFound
	}

	sum := sha256.Sum256([]byte(clean))
	if calculated := hex.EncodeToString(sum[:]); calculated != m.ReportHash {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, m.ReportHash, calculated)
	}

	return m, nil
}

// VerifyArtifact checks a file on disk against the digest recorded for
// its label.
func (m *Manifest) VerifyArtifact(label, path string) error {
	want, ok := m.Artifacts[label]
	if !ok {
		return fmt.Errorf("%w: no digest for %q", ErrArtifactMismatch, label)
	}

	got, err := HashFile(path)
	if err != nil {
		return err
	}

	if got != want {
		return fmt.Errorf("%w: %s expected %s, got %s", ErrArtifactMismatch, label, want, got)
	}

	return nil
}
