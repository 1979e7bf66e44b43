package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// errEmptyRecord marks a detail payload that carries no drama at all
var errEmptyRecord = errors.New("empty record")

// RawDrama is a drama record as the catalog API returns it. Every field is
// optional; the same value may arrive under more than one key (see Normalize).
type RawDrama struct {
	BookID       FlexString `json:"bookId"`
	BookName     FlexString `json:"bookName,omitempty"`
	Title        FlexString `json:"title,omitempty"`
	CoverWap     FlexString `json:"coverWap,omitempty"`
	Cover        FlexString `json:"cover,omitempty"`
	ChapterCount FlexInt    `json:"chapterCount,omitempty"`
	Introduction FlexString `json:"introduction,omitempty"`
	Tags         Tags       `json:"tags,omitempty"`
	RankVo       *RankVo    `json:"rankVo,omitempty"`
}

// RankVo is the ranking sub-record attached to trending entries
type RankVo struct {
	HotCode FlexString `json:"hotCode"`
}

// UnmarshalJSON ignores anything that is not an object
func (r *RankVo) UnmarshalJSON(data []byte) error {
	*r = RankVo{}
	if !isObject(data) {
		return nil
	}
	type plain RankVo
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = RankVo(v)
	return nil
}

// DramaList decodes each record on its own, so one malformed record does not
// take the rest of the list with it
type DramaList []RawDrama

func (l *DramaList) UnmarshalJSON(data []byte) error {
	items, err := decodeEach[RawDrama](data, logrus.WithField("component", "catalog"))
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// DramaDetail is the payload of the detail endpoint. The record may be flat or
// nested under "book", "data" or "data.book".
type DramaDetail struct {
	RawDrama
}

// A null or empty record at any level fails with errEmptyRecord.
func (d *DramaDetail) UnmarshalJSON(data []byte) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decoding detail envelope: %w", err)
	}

	record := json.RawMessage(data)
	if book, ok := envelope["book"]; ok {
		record = book
	} else if inner, ok := envelope["data"]; ok {
		record = inner
		if isObject(inner) {
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(inner, &nested); err != nil {
				return fmt.Errorf("decoding detail data: %w", err)
			}
			if book, ok := nested["book"]; ok {
				record = book
			}
		}
	}

	if isEmptyRecord(record) {
		return errEmptyRecord
	}
	return json.Unmarshal(record, &d.RawDrama)
}

// VIPFeed is the featured shelf: a set of titled columns of dramas
type VIPFeed struct {
	Columns []VIPColumn `json:"columns"`
}

// VIPColumn is one titled row of the featured shelf
type VIPColumn struct {
	ColumnID FlexString `json:"columnId"`
	Title    string     `json:"title"`
	BookList DramaList  `json:"bookList"`
}

func (v *VIPFeed) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	// A bare list of dramas becomes a single untitled column.
	if len(data) > 0 && data[0] == '[' {
		var books DramaList
		if err := json.Unmarshal(data, &books); err != nil {
			return fmt.Errorf("decoding vip list: %w", err)
		}
		v.Columns = []VIPColumn{{Title: "VIP", BookList: books}}
		return nil
	}

	var envelope struct {
		ColumnVoList []VIPColumn `json:"columnVoList"`
		Data         *VIPFeed    `json:"data"`
		Columns      []VIPColumn `json:"columns"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decoding vip feed: %w", err)
	}

	switch {
	case envelope.ColumnVoList != nil:
		v.Columns = envelope.ColumnVoList
	case envelope.Columns != nil:
		v.Columns = envelope.Columns
	case envelope.Data != nil:
		v.Columns = envelope.Data.Columns
	default:
		v.Columns = []VIPColumn{}
	}
	return nil
}

// Episode is one chapter of a drama with its CDN rendition groups
type Episode struct {
	ChapterID    FlexString `json:"chapterId"`
	ChapterIndex FlexInt    `json:"chapterIndex"`
	ChapterName  string     `json:"chapterName"`
	CdnList      []CDN      `json:"cdnList"`
}

// CDN groups the renditions served from one CDN domain
type CDN struct {
	CdnDomain     string      `json:"cdnDomain"`
	IsDefault     FlexBool    `json:"isDefault"`
	VideoPathList []Rendition `json:"videoPathList"`
}

// Rendition is one encoded variant of an episode
type Rendition struct {
	Quality   FlexInt  `json:"quality"`
	IsDefault FlexBool `json:"isDefault"`
	VideoPath string   `json:"videoPath"`
}

// Renditions returns the rendition list of the primary CDN entry
func (e Episode) Renditions() []Rendition {
	if len(e.CdnList) == 0 {
		return nil
	}
	return e.CdnList[0].VideoPathList
}

// FlexString accepts a JSON string or number
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FlexInt accepts a JSON number or a numeric string. Non-numeric strings decode to zero.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var s FlexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if s == "" {
		*i = 0
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil {
		*i = 0
		return nil
	}
	*i = FlexInt(f)
	return nil
}

// FlexBool accepts true/false, 1/0 and their string forms
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var s FlexString
	if err := s.UnmarshalJSON(data); err != nil {
		var v bool
		if jerr := json.Unmarshal(data, &v); jerr != nil {
			return fmt.Errorf("expected bool or 0/1, got %s", data)
		}
		*b = FlexBool(v)
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "1", "true", "yes":
		*b = true
	default:
		*b = false
	}
	return nil
}

// Tags accepts a list of strings or of objects carrying tagName/name, or a
// single bare string. Any other shape decodes to no tags.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Tags{}
		if single != "" {
			*t = Tags{single}
		}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		*t = Tags{}
		return nil
	}

	tags := make(Tags, 0, len(items))
	for _, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			tags = append(tags, name)
			continue
		}
		var obj struct {
			TagName string `json:"tagName"`
			Name    string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		if obj.TagName != "" {
			tags = append(tags, obj.TagName)
		} else if obj.Name != "" {
			tags = append(tags, obj.Name)
		}
	}
	*t = tags
	return nil
}

// decodeEach decodes the elements of a JSON array one at a time. Elements that
// are null or fail to decode are dropped.
func decodeEach[T any](raw json.RawMessage, log *logrus.Entry) ([]T, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}

	items := make([]T, 0, len(elems))
	for i, elem := range elems {
		if isNull(elem) {
			continue
		}
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			log.WithFields(logrus.Fields{
				"index": i,
				"error": err,
			}).Debug("skipping malformed catalog record")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func isEmptyRecord(raw json.RawMessage) bool {
	if isNull(raw) {
		return true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}
