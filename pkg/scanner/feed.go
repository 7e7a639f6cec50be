package scanner

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

var (
	diskPartitionRE  = regexp.MustCompile(`Partition(\d+)Scan`)
	agentPartitionRE = regexp.MustCompile(`_partition_(\d+)_scan`)
)

// ClassifyToken turns one raw queue token from the UI driver into a tagged
// work item. Classification happens once here, at the producer boundary, so
// the orchestrator never has to string-match paths itself: markers and the
// Done/Error sentinels are recognized verbatim, image paths get their agent
// part and partition number read off the filename.
func ClassifyToken(token string) WorkItem {
	switch token {
	case "Disk", "WEngine", "Character":
		return WorkItem{Kind: KindMarker, Category: Category(token)}
	case "Done":
		return WorkItem{Kind: KindDone}
	}
	if strings.HasPrefix(token, "Error") {
		return WorkItem{Kind: KindFatal, Path: token}
	}

	item := WorkItem{Kind: KindImage, Path: token}
	if m := diskPartitionRE.FindStringSubmatch(token); m != nil {
		item.Partition, _ = strconv.Atoi(m[1])
	}
	base := filepath.Base(token)
	switch {
	case strings.Contains(base, "name"):
		item.Part = PartName
	case strings.Contains(base, "level"):
		item.Part = PartLevel
	case strings.Contains(base, "skill"):
		item.Part = PartSkill
		item.SkillKey = skillKeyFromPath(base)
	case strings.Contains(base, "weapon"):
		item.Part = PartWeapon
	case strings.Contains(base, "cinema"):
		item.Part = PartCinema
	default:
		if m := agentPartitionRE.FindStringSubmatch(base); m != nil {
			item.Part = PartDisk
			item.Partition, _ = strconv.Atoi(m[1])
		}
	}
	return item
}

// skillKeyFromPath extracts the skill key from a filename like
// agent_1_skill_basic_attack_scan.png.
func skillKeyFromPath(base string) string {
	_, after, ok := strings.Cut(base, "_skill_")
	if !ok {
		return ""
	}
	after = strings.TrimSuffix(after, filepath.Ext(after))
	return strings.TrimSuffix(after, "_scan")
}

// ReadFeed forwards classified tokens read line by line from r, stopping
// after a terminal token (Done or an upstream error) or at end of input.
func ReadFeed(r io.Reader, out chan<- WorkItem) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		token := strings.TrimSpace(sc.Text())
		if token == "" {
			continue
		}
		item := ClassifyToken(token)
		out <- item
		if item.Kind == KindDone || item.Kind == KindFatal {
			return nil
		}
	}
	return sc.Err()
}

// TailFeed follows a feed file the UI driver appends queue tokens to,
// forwarding each complete new line as it lands, and returns once a terminal
// token has been forwarded. Write events are debounced so half-written lines
// settle before the file is read.
func TailFeed(path string, out chan<- WorkItem) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	log.Printf("Tailing %s (debounced) ...", path)

	var offset int64
	// pick up whatever the driver wrote before we started watching
	terminal, err := drainFeed(path, &offset, out)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if terminal {
		return nil
	}

	var lastWrite time.Time
	dirty := false
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				dirty = true
				lastWrite = time.Now()
			}
		case <-ticker.C:
			if !dirty || time.Since(lastWrite) < 300*time.Millisecond { // stable
				continue
			}
			dirty = false
			terminal, err := drainFeed(path, &offset, out)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return err
			}
			if terminal {
				return nil
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// drainFeed forwards complete lines from the stored offset onward and
// advances it, leaving any trailing partial line for the next pass. Reports
// whether a terminal token went out.
func drainFeed(path string, offset *int64, out chan<- WorkItem) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	if _, err := f.Seek(*offset, io.SeekStart); err != nil {
		return false, err
	}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, err
		}
		*offset += int64(len(line))
		token := strings.TrimSpace(line)
		if token == "" {
			continue
		}
		item := ClassifyToken(token)
		out <- item
		if item.Kind == KindDone || item.Kind == KindFatal {
			return true, nil
		}
	}
}
