package service

// Offline fallback replies, one per intent category. They are served
// whenever the matching external provider is unreachable or errors,
// so a chat request never surfaces a provider failure to the farmer.
var fallbackReplies = map[Intent]string{
	IntentWeather: "I could not reach the weather service right now. As a general rule, check local " +
		"conditions before irrigating or spraying, and avoid field work ahead of heavy rain.",
	IntentPrice: "Live market prices are unavailable at the moment. Recent reference prices: wheat " +
		"about $5.50/bushel, corn $4.20/bushel, soybeans $12.80/bushel, rice $18.50/hundredweight.",
	IntentDisease: "I could not analyze the image right now. Look for discolored or wilting leaves, " +
		"spots, or unusual growth. Remove affected parts and consult a local agronomist if it spreads.",
	IntentCrops: "I could not load recommendations right now. Match crops to your season: kharif " +
		"(June-September) suits rice and maize, rabi (October-March) suits wheat and mustard.",
	IntentGeneric: "I am having trouble reaching my knowledge service. Please try again shortly, or " +
		"ask about weather, market prices, crop diseases, or what to plant this season.",
}

// FallbackReply returns the static offline response for an intent
func FallbackReply(intent Intent) string {
	if reply, ok := fallbackReplies[intent]; ok {
		return reply
	}
	return fallbackReplies[IntentGeneric]
}
