package curriculum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalogDoc = `{
  "format": "v1.0.0",
  "topics": [
    {
      "id": "3-sci-plants",
      "name": "Plants and Growth",
      "grade": "3",
      "subject": "science",
      "difficulty": "beginner",
      "estimated_hours": 2.5,
      "skills": ["biology"],
      "sort_order": 10
    },
    {
      "id": "3-sci-habitats",
      "name": "Habitats",
      "grade": "3",
      "subject": "science",
      "difficulty": "intermediate",
      "estimated_hours": 3,
      "prerequisites": ["3-sci-plants"],
      "skills": ["biology", "ecology"],
      "sort_order": 20,
      "active": false
    }
  ]
}`

func TestLoad_ValidDocument(t *testing.T) {
	c, err := Load(strings.NewReader(validCatalogDoc))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	plants, ok := c.Topic("3-sci-plants")
	require.True(t, ok)
	assert.Equal(t, "Plants and Growth", plants.Name)
	assert.Equal(t, "3", plants.GradeID)
	assert.Equal(t, "science", plants.SubjectID)
	assert.Equal(t, DifficultyBeginner, plants.Difficulty)
	assert.Equal(t, 2.5, plants.EstimatedHours)
	assert.True(t, plants.Active, "active should default to true")

	habitats, ok := c.Topic("3-sci-habitats")
	require.True(t, ok)
	assert.False(t, habitats.Active)
	assert.Equal(t, []string{"3-sci-plants"}, habitats.Prerequisites)
}

func TestLoad_Rejections(t *testing.T) {
	const topic = `{
      "id": "a",
      "name": "A",
      "grade": "k",
      "subject": "math",
      "difficulty": "beginner",
      "estimated_hours": 1
    }`

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "malformed json",
			doc:     `{"format": "v1.0.0"`,
			wantErr: "parse catalog",
		},
		{
			name:    "missing topics",
			doc:     `{"format": "v1.0.0"}`,
			wantErr: "catalog document",
		},
		{
			name:    "empty topic list",
			doc:     `{"format": "v1.0.0", "topics": []}`,
			wantErr: "catalog document",
		},
		{
			name:    "format not semver",
			doc:     `{"format": "1.0", "topics": [` + topic + `]}`,
			wantErr: "catalog document",
		},
		{
			name:    "unsupported major version",
			doc:     `{"format": "v2.0.0", "topics": [` + topic + `]}`,
			wantErr: "unsupported catalog format",
		},
		{
			name: "unknown difficulty",
			doc: `{"format": "v1.0.0", "topics": [{
				"id": "a", "name": "A", "grade": "k", "subject": "math",
				"difficulty": "expert", "estimated_hours": 1
			}]}`,
			wantErr: "catalog document",
		},
		{
			name: "zero estimated hours",
			doc: `{"format": "v1.0.0", "topics": [{
				"id": "a", "name": "A", "grade": "k", "subject": "math",
				"difficulty": "beginner", "estimated_hours": 0
			}]}`,
			wantErr: "catalog document",
		},
		{
			name: "missing name",
			doc: `{"format": "v1.0.0", "topics": [{
				"id": "a", "grade": "k", "subject": "math",
				"difficulty": "beginner", "estimated_hours": 1
			}]}`,
			wantErr: "catalog document",
		},
		{
			name: "unknown topic field",
			doc: `{"format": "v1.0.0", "topics": [{
				"id": "a", "name": "A", "grade": "k", "subject": "math",
				"difficulty": "beginner", "estimated_hours": 1, "color": "blue"
			}]}`,
			wantErr: "catalog document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ToleratesGraphDefects(t *testing.T) {
	// Dangling prerequisites pass Load; they are Audit's concern.
	doc := `{"format": "v1.0.0", "topics": [{
		"id": "a", "name": "A", "grade": "k", "subject": "math",
		"difficulty": "beginner", "estimated_hours": 1,
		"prerequisites": ["ghost"]
	}]}`

	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	err = c.Audit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalogDoc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog")
}
