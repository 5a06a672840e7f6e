package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"QString", []string{"q", "string"}},
		{"QXmlStreamReader::readNext", []string{"q", "xml", "stream", "reader", "read", "next"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"QPoint::~QPoint", []string{"q", "point", "q", "point"}},
		{"Qt::AlignmentFlag", []string{"qt", "alignment", "flag"}},
		{"qt_version_2", []string{"qt", "version", "2"}},
		{"QVector<int>", []string{"q", "vector", "int"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Normalize("QtCore::QString"), Normalize("qtcore_qstring"))
	assert.Equal(t, "qpointsetx", Normalize("QPoint::setX"))
	assert.Empty(t, Normalize("::"))
}
