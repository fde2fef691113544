package fileserver

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Entry is a file in a directory listing.
type Entry struct {
	Name      string
	Size      int64
	Modified  time.Time
	Supported bool
}

// SizeText returns the human readable size.
func (e Entry) SizeText() string {
	return FormatSize(e.Size)
}

// Listing is the visible content of one directory.
type Listing struct {
	Dirs  []string
	Files []Entry
	// Modified is the latest modification time of the directory and its
	// listed files.
	Modified time.Time
}

// FormatSize renders a byte count as "empty", "N bytes", "N.N KB" or "N MB".
func FormatSize(size int64) string {
	if size <= 0 {
		return "empty"
	}
	if size <= 1024 {
		return fmt.Sprintf("%d bytes", size)
	}
	kb := float64(size) / 1024
	if kb > 1024 {
		return fmt.Sprintf("%d MB", int64(kb/1024))
	}
	return fmt.Sprintf("%.1f KB", kb)
}

// list reads one level of dir, hiding filtered names and broken symlinks.
func (s *Server) list(dir string) (*Listing, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	l := &Listing{Modified: info.ModTime()}
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		if s.isHidden(s.rel(full), false) {
			continue
		}
		st, err := os.Stat(full)
		if err != nil {
			// Broken symlink.
			continue
		}
		if st.IsDir() {
			l.Dirs = append(l.Dirs, e.Name())
			continue
		}
		l.Files = append(l.Files, Entry{
			Name:      e.Name(),
			Size:      st.Size(),
			Modified:  st.ModTime(),
			Supported: s.supported(e.Name()),
		})
		if st.ModTime().After(l.Modified) {
			l.Modified = st.ModTime()
		}
	}

	slices.SortFunc(l.Dirs, CompareNatural)
	slices.SortFunc(l.Files, func(a, b Entry) int { return CompareNatural(a.Name, b.Name) })
	return l, nil
}

func (s *Server) supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext != "" && s.extensions[ext]
}

// chunk is one run of a natural sort key: digits or non-digits.
type chunk struct {
	text  string
	digit bool
}

// alphanumKey splits s into alternating text and number chunks. The key
// always starts and ends with a (possibly empty) text chunk, so keys of
// two strings line up chunk kind by chunk kind: "z23a" is [z 23 a] and
// "23" is ["" 23 ""].
func alphanumKey(s string) []chunk {
	key := []chunk{{}}
	for i := 0; i < len(s); {
		j := i
		isDigit := s[i] >= '0' && s[i] <= '9'
		for j < len(s) && (s[j] >= '0' && s[j] <= '9') == isDigit {
			j++
		}
		if isDigit {
			key = append(key, chunk{text: s[i:j], digit: true}, chunk{})
		} else {
			key[len(key)-1].text = s[i:j]
		}
		i = j
	}
	return key
}

func compareChunk(a, b chunk) int {
	if a.digit && b.digit {
		x := strings.TrimLeft(a.text, "0")
		y := strings.TrimLeft(b.text, "0")
		if c := cmp.Compare(len(x), len(y)); c != 0 {
			return c
		}
		return strings.Compare(x, y)
	}
	return strings.Compare(a.text, b.text)
}

// CompareNatural orders strings with embedded numbers numerically, so
// "file2" sorts before "file10". Strings with equal keys ("a07", "a7")
// fall back to plain comparison.
func CompareNatural(a, b string) int {
	ka, kb := alphanumKey(a), alphanumKey(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := compareChunk(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(ka), len(kb)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
