package script

import "fmt"

// Words-per-minute speech rates used to derive the target word count from the
// requested duration. Hebrew narration runs slower than English.
const (
	wordsPerMinuteEnglish = 150
	wordsPerMinuteHebrew  = 120
)

var styleInstructions = map[string]string{
	"friendly":     "חם, ידידותי, כאילו מדבר עם חבר טוב",
	"professional": "מקצועי ואמין, אבל לא יבש",
	"casual":       "קליל ומשעשע, עם הומור קל",
}

func targetWordCount(language string, durationSeconds int) int {
	wpm := wordsPerMinuteHebrew
	if language == "english" {
		wpm = wordsPerMinuteEnglish
	}
	return durationSeconds * wpm / 60
}

// systemPrompt builds the system instruction for the given language and tone.
// Both variants mandate the same seven-part bracket-marked structure the
// parser recognizes.
func systemPrompt(language, style string) string {
	if language == "hebrew" {
		instruction, ok := styleInstructions[style]
		if !ok {
			instruction = styleInstructions["friendly"]
		}
		return fmt.Sprintf(`אתה כותב תסריטים לסרטוני סקירת מוצרים ביוטיוב.

הסגנון שלך: %s

כללים חשובים:
1. תמיד פתח ב-HOOK חזק שתופס תוך 3 שניות
2. היה כנה - אם יש חסרונות, תזכיר אותם
3. אל תהיה "מכירתי" מדי - אנשים מריחים את זה
4. השתמש בשפה יומיומית, לא פורמלית
5. כלול ציטוטים מביקורות אמיתיות
6. סיים עם המלצה ברורה וקריאה לפעולה

מבנה התסריט:
[HOOK] - 5-10 שניות - משפט פתיחה שתופס
[INTRO] - 10-15 שניות - היכרות והצגת המוצר
[FEATURES] - 30-45 שניות - תכונות עיקריות
[PROS] - 30-45 שניות - יתרונות עם דוגמאות
[CONS] - 20-30 שניות - חסרונות בכנות
[VERDICT] - 15-20 שניות - סיכום והמלצה
[CTA] - 10 שניות - קריאה לפעולה

סמן כל חלק ב-[שם החלק] בתחילתו.`, instruction)
	}

	return `You write scripts for YouTube product review videos.

Your style: Warm and engaging, like talking to a good friend.

Important rules:
1. Always start with a strong HOOK that grabs attention in 3 seconds
2. Be honest - mention drawbacks if they exist
3. Don't be too "salesy" - people can tell
4. Use everyday language, not formal
5. Include real review quotes when relevant
6. End with a clear recommendation and call to action

Script structure:
[HOOK] - 5-10 seconds - Attention-grabbing opening
[INTRO] - 10-15 seconds - Introduction and product overview
[FEATURES] - 30-45 seconds - Key features
[PROS] - 30-45 seconds - Advantages with examples
[CONS] - 20-30 seconds - Honest drawbacks
[VERDICT] - 15-20 seconds - Summary and recommendation
[CTA] - 10 seconds - Call to action

Mark each section with [SECTION NAME] at the start.`
}

// userPrompt builds the user instruction embedding the product info and the
// computed word target.
func userPrompt(productInfo string, targetWords int, language string) string {
	if language == "hebrew" {
		return fmt.Sprintf(`כתוב תסריט לסרטון סקירת מוצר ביוטיוב.

אורך מטרה: כ-%d מילים (3 דקות)

מידע על המוצר:
%s

דגשים:
- התחל עם הוק שמעורר סקרנות
- הדגש את הפיצ'ר הכי ייחודי (FreeSip)
- התייחס לויראליות בטיקטוק
- השווה למתחרים (Stanley, Hydro Flask)
- תן ציון מ-1 עד 10 בסוף
- סיים עם "לינק בתיאור" ובקשה ללייק ומנוי

כתוב את התסריט המלא:`, targetWords, productInfo)
	}

	return fmt.Sprintf(`Write a script for a YouTube product review video.

Target length: ~%d words (3 minutes)

Product information:
%s

Key points:
- Start with a curiosity-provoking hook
- Highlight the most unique feature (FreeSip)
- Reference TikTok virality
- Compare to competitors (Stanley, Hydro Flask)
- Give a score from 1 to 10 at the end
- End with "link in description" and like/subscribe request

Write the full script:`, targetWords, productInfo)
}
