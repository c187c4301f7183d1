package messages

const (
	FailedToParseMsg      = "failed to parse API response on URL %s: %w"
	InvalidRiotId         = "invalid Riot ID, use GameName#TagLine"
	InvalidMode           = "invalid mode %q, use one of: all, ranked, unranked, aram, arena"
	RateLimitExhaustedMsg = "rate limited by the API after %d retries on URL %s"
	RequestFailedMsg      = "API request failed on URL %s: %w"
	TimeoutMsg            = "API request timed out after %s on URL %s"
)
