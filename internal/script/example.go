package script

import "strings"

// exampleScriptHebrew is a pre-generated review script used when no
// text-generation credential is configured or the live call fails.
const exampleScriptHebrew = `
[HOOK]
בקבוק מים ב-28 דולר שמכר יותר מכל Stanley ו-Hydro Flask ביחד? בואו נבדוק אם זה באמת שווה את ההייפ.

[INTRO]
היי, מה קורה? היום אנחנו בודקים את Owala FreeSip - הבקבוק שכבש את טיקטוק עם 272 מיליון צפיות. אני אגלה לכם בדיוק למה כולם משתגעים עליו, ומה הדברים שאף אחד לא מספר לכם.

[FEATURES]
אז מה מיוחד פה? הפיצ'ר המטורף הוא ה-FreeSip - פתח כפול שמאפשר לשתות גם מקש וגם לגמוע ישירות. בלי להחליף מכסים, בלי להתעסק. פשוט לוחצים על הכפתור ושותים.

יש פה בידוד דו-שכבתי שאמור לשמור על הקור 24 שעות. בדקתי את זה - שמתי קרח בלילה, ובבוקר אחרי הוא עדיין היה שם. מרשים.

המכסה נועל פעמיים - פעם עם הכפתור ופעם עם הידית. אפשר לזרוק לתיק בלי דאגה.

[PROS]
בואו נדבר על היתרונות:
ראשית, העיצוב פשוט מדהים. יש פה צבעים שאף מותג אחר לא מעז לעשות - "Smooshed Blueberry", "Shy Marshmallow" - השמות לבד שווים את הכסף.

שנית, הקש המוסתר. בניגוד ל-Stanley שהקש שלו חשוף לכל החיידקים בעולם, פה הוא מוגן בתוך המכסה.

ומשתמשים כותבים: "הפלתי אותו לנהר, הוא שרד" ו"הדבר הכי טוב שקניתי השנה".

[CONS]
עכשיו בואו נהיה כנים. יש פה כמה דברים שצריך לדעת:
אחד - זה לא למשקאות חמים. הקש לא מתאים לזה.
שניים - הגרסאות הגדולות לא נכנסות למתקן כוסות ברכב. ה-24 אונקיות בקושי נכנס.
שלוש - צריך לנקות לפחות פעם בשבוע. יש חלקי סיליקון שיכולים לתפוס עובש אם מזניחים.

[VERDICT]
אז האם זה שווה את הכסף?
בהחלט כן. במחיר של 28 דולר, אתם מקבלים בקבוק עם פיצ'רים של בקבוקים ב-50 דולר. האיכות מעולה, העיצוב מדהים, והשימושיות פשוט הכי נוחה שניסיתי.

הציון שלי: 8.5 מתוך 10. נקודה וחצי הורדתי על הגודל שלא תמיד מתאים ועל הניקיון התדיר.

[CTA]
אם אתם רוצים לרכוש - יש לינק בתיאור עם המחיר הכי טוב שמצאתי.
אהבתם? תנו לייק ותירשמו לערוץ. יש לי עוד המון סקירות כאלה בדרך.
נתראה בסרטון הבא!
`

// ExampleScript returns the pre-generated Hebrew script parsed through the
// regular section parser, so demo runs exercise the same code path as live
// generation.
func ExampleScript() *Result {
	return &Result{
		FullScript:        exampleScriptHebrew,
		Sections:          ParseSections(exampleScriptHebrew),
		Language:          "hebrew",
		EstimatedDuration: 180,
		WordCount:         len(strings.Fields(exampleScriptHebrew)),
	}
}
