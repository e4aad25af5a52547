package curriculum

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
)

// FormatVersion is the catalog document format this build writes and
// the newest major version Load accepts.
const FormatVersion = "v1.0.0"

type catalogDocument struct {
	Format string          `json:"format"`
	Topics []topicDocument `json:"topics"`
}

type topicDocument struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Grade          string   `json:"grade"`
	Subject        string   `json:"subject"`
	Difficulty     string   `json:"difficulty"`
	EstimatedHours float64  `json:"estimated_hours"`
	Prerequisites  []string `json:"prerequisites"`
	Skills         []string `json:"skills"`
	SortOrder      int      `json:"sort_order"`
	Active         *bool    `json:"active"`
}

// Load reads a catalog document from r. The document must parse as
// JSON, pass the catalog schema, and carry a v1 format version. Graph
// defects such as dangling prerequisites or cycles do not fail Load;
// run Audit on the result to surface them.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog document: %w", err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if !semver.IsValid(doc.Format) || semver.Major(doc.Format) != "v1" {
		return nil, fmt.Errorf("unsupported catalog format %q (want major version v1)", doc.Format)
	}

	topics := make([]Topic, 0, len(doc.Topics))
	for _, td := range doc.Topics {
		diff, err := ParseDifficulty(td.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("topic %q: %w", td.ID, err)
		}
		active := true
		if td.Active != nil {
			active = *td.Active
		}
		topics = append(topics, Topic{
			ID:             td.ID,
			Name:           td.Name,
			GradeID:        td.Grade,
			SubjectID:      td.Subject,
			Difficulty:     diff,
			EstimatedHours: td.EstimatedHours,
			Prerequisites:  td.Prerequisites,
			Skills:         td.Skills,
			SortOrder:      td.SortOrder,
			Active:         active,
		})
	}
	return NewCatalog(topics), nil
}

// LoadFile reads a catalog document from the file at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}
