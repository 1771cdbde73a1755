package usecase

import (
	"strings"

	"market_backend/internal/feature/market/domain/entity"
)

const twitterBaseURL = "https://twitter.com/"

// normalizeLinks turns the raw upstream links into the card's links.
func normalizeLinks(l entity.CoinLinks) entity.Links {
	return entity.Links{
		Whitepaper: nonEmpty(l.Whitepaper),
		Website:    websiteURL(l.Homepage),
		Twitter:    twitterURL(l.TwitterScreenName),
	}
}

// websiteURL returns the first homepage that is non-empty after trimming.
func websiteURL(homepage []string) entity.Optional[string] {
	for _, u := range homepage {
		if u = strings.TrimSpace(u); u != "" {
			return entity.Known(u)
		}
	}
	return entity.Unknown[string]()
}

// twitterURL turns a screen name into a profile URL.
func twitterURL(screenName string) entity.Optional[string] {
	name := strings.TrimSpace(screenName)
	if name == "" {
		return entity.Unknown[string]()
	}
	return entity.Known(twitterBaseURL + name)
}

func nonEmpty(s string) entity.Optional[string] {
	if s == "" {
		return entity.Unknown[string]()
	}
	return entity.Known(s)
}
