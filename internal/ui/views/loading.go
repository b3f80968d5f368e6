package views

// LoadingText is shown while a page request is outstanding
const LoadingText = "Loading..."

// ErrorText replaces the table after a failed request
const ErrorText = "Something went wrong :("

// MoreText is the load-more control under the table
const MoreText = "[m] More"

// RenderLoading renders the loading indicator
func (r *Renderer) RenderLoading() string {
	return r.styles.Loading.Render(LoadingText)
}
