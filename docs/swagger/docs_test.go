package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_ReadDoc(t *testing.T) {
	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths               map[string]map[string]struct{ Summary string } `json:"paths"`
		SecurityDefinitions map[string]any                                 `json:"securityDefinitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "File Storage API", doc.Info.Title)
	assert.Empty(t, doc.SecurityDefinitions)

	files := doc.Paths["/files/{folder}/{name}"]
	assert.Equal(t, "Download File", files["get"].Summary)
	assert.Equal(t, "File Exists", files["head"].Summary)
	assert.Equal(t, "Upload File", files["put"].Summary)
	assert.Equal(t, "Delete File", files["delete"].Summary)
	assert.Equal(t, "Health", doc.Paths["/health"]["get"].Summary)
	assert.Equal(t, "Aggregate Statistics", doc.Paths["/stats"]["get"].Summary)
}
