package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Electrician profile</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Electrician profile")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_SetsUserAgent(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, userAgent)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestURL_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractMainText_UsesContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<main>Installs and maintains electrical systems.</main>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html, CareerPageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "electrical systems")
	assert.NotContains(t, text, "navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>Plain page content</div></body></html>`

	text, err := ExtractMainText(html, CareerPageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Plain page content")
}

func TestExtractMainText_RemovesNoiseSelectors(t *testing.T) {
	html := `<html><body><main>
		<div class="related-jobs">Related occupations</div>
		<p>Real content</p>
	</main></body></html>`

	text, err := ExtractMainText(html, []string{"main"}, ".related-jobs")
	require.NoError(t, err)
	assert.Contains(t, text, "Real content")
	assert.NotContains(t, text, "Related occupations")
}

func TestExtractSalaryAndOutlook(t *testing.T) {
	html := `<html><body><table class="quick-facts">
		<tr><th>Median Pay</th><td>$61,590 per year</td></tr>
		<tr><th>Job Outlook</th><td>6% (Faster than average)</td></tr>
	</table></body></html>`

	salary, outlook, err := ExtractSalaryAndOutlook(html)
	require.NoError(t, err)
	assert.Equal(t, "$61,590 per year", salary)
	assert.Equal(t, "6% (Faster than average)", outlook)
}

func TestExtractSalaryAndOutlook_Absent(t *testing.T) {
	salary, outlook, err := ExtractSalaryAndOutlook("<html><body><p>No facts</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, salary)
	assert.Empty(t, outlook)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("content ", 100)))
}

func TestCleanWhitespace(t *testing.T) {
	input := "  line one  \n\n\n   line two\n   \n"

	assert.Equal(t, "line one\nline two", cleanWhitespace(input))
}
