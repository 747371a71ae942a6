package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"competition-portal-server/models"
)

func TestFilterCheck(t *testing.T) {
	filter := NewFilter([]string{"spam", "scam"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "clean text",
			text: "A perfectly reasonable forum post",
			want: nil,
		},
		{
			name: "single match",
			text: "this is spam",
			want: []string{"spam"},
		},
		{
			name: "case insensitive",
			text: "THIS IS SPAM",
			want: []string{"spam"},
		},
		{
			name: "substring match",
			text: "an antispammer device",
			want: []string{"spam"},
		},
		{
			name: "multiple matches",
			text: "spam and a scam together",
			want: []string{"spam", "scam"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Check(tt.text))
		})
	}
}

func TestNewFilterNormalizesWords(t *testing.T) {
	filter := NewFilter([]string{" Spam ", "", "SCAM"})

	assert.Equal(t, []string{"spam"}, filter.Check("spam"))
	assert.Equal(t, []string{"scam"}, filter.Check("scam"))
	assert.Nil(t, filter.Check(""))
}

func TestLoadFilter(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.BannedWord{}))

	require.NoError(t, db.Create(&models.BannedWord{Word: "clickbait"}).Error)

	filter, err := LoadFilter(db)
	require.NoError(t, err)

	assert.Equal(t, []string{"clickbait"}, filter.Check("pure CLICKBAIT title"))
	assert.Nil(t, filter.Check("an honest title"))
}
