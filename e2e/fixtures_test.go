//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CreateTestWorkspace creates the directory the file picker starts in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tf.workspace = tf.t.TempDir()
	return tf.workspace, nil
}

// CreateCalendar writes a calendar with n events named "Event 0".."Event n-1"
// into the workspace
func (tf *TUITestFramework) CreateCalendar(name string, n int) (string, error) {
	base := time.Date(2016, 7, 5, 8, 0, 0, 0, time.UTC)
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//icsselect//e2e//EN\r\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "BEGIN:VEVENT\r\nUID:event-%02d\r\nDTSTAMP:20160801T120000Z\r\n", i)
		fmt.Fprintf(&b, "CREATED:%s\r\n", base.Add(time.Duration(i)*time.Minute).Format("20060102T150405Z"))
		fmt.Fprintf(&b, "DTSTART:20160801T090000Z\r\nDTEND:20160801T100000Z\r\nSUMMARY:Event %d\r\nEND:VEVENT\r\n", i)
	}
	b.WriteString("END:VCALENDAR\r\n")
	return tf.CreateFile(name, b.String())
}

// CreateFile writes raw content into the workspace
func (tf *TUITestFramework) CreateFile(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	return path, os.WriteFile(path, []byte(content), 0644)
}

// WriteConfig writes config.toml under the isolated $XDG_CONFIG_HOME
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	dir := filepath.Join(tf.home, ".config", "icsselect")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.toml")
	return path, os.WriteFile(path, []byte(content), 0644)
}
