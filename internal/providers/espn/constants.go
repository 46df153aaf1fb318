package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "http://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512

	defaultColor       = "000000"
	defaultNFLHome     = "ff0000"
	defaultNFLAway     = "0000ff"
	defaultPlaceholder = "N/A"
	defaultInning      = "0"
)
