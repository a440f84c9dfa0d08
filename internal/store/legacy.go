package store

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
)

// LegacyFileName은 이전 버전이 사용하던 XML 저장 파일 이름이다.
const LegacyFileName = "shortcuts.xml"

type legacyDoc struct {
	XMLName   xml.Name         `xml:"shortcuts"`
	Version   string           `xml:"version,attr"`
	Shortcuts []legacyShortcut `xml:"shortcut"`
}

type legacyShortcut struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ReadLegacyXML은 <shortcuts><shortcut name=".." value=".."/></shortcuts>
// 형식의 파일을 읽는다. 파일이 없으면 nil을 반환한다.
func ReadLegacyXML(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.ReadLegacyXML: %w: %w", ErrStore, err)
	}

	var doc legacyDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store.ReadLegacyXML: %w: %w", ErrStore, err)
	}

	entries := make([]Entry, 0, len(doc.Shortcuts))
	for _, s := range doc.Shortcuts {
		if s.Name == "" || s.Value == "" {
			continue
		}
		entries = append(entries, Entry{Name: s.Name, Path: s.Value})
	}
	return entries, nil
}
