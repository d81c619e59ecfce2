package service

import "strings"

// RecipeSystemPrompt frames the model as a chef and nutritionist
const RecipeSystemPrompt = "You are a professional chef and nutritionist. Provide clear, practical, daily recipes formatted as required."

// The model is asked for the Arabic layout first and a JSON object with fixed
// keys after it. ExtractRecipe relies on that JSON block being last.
const (
	recipePromptIntro  = "\nاكتب وصفة طعام إبداعية باستخدام هذه المكونات: "
	recipePromptLayout = ". \n" + `رجاءً اتبع هذا التنسيق بدقة:

اسم الوصفة: (اسم الوصفة)

المكونات:
- (قائمة المكونات)

خطوات الطهي:
1. (خطوات الطهي التفصيلية)

وقت الطهي التقريبي: (عدد الدقائق)

القيمة الغذائية (لكل حصة):
- السعرات الحرارية: (عدد السعرات)
- البروتين: (غرام)
- الدهون: (غرام)
- الكربوهيدرات: (غرام)

ملاحظة: بعد كتابة الوصفة بهذا التنسيق من اليمين الى اليسار ولا تضع اي كلمة انجليزية كلها كلمات عربىة ، قم بإرجاعها أيضًا ككائن JSON بهذا الشكل:
{
  "recipe_name": "اسم الوصفة",
  "ingredients": ["مكون 1", "مكون 2", "مكون 3"],
  "instructions": ["خطوة 1", "خطوة 2", "خطوة 3"],
  "estimated_time": "عدد الدقائق",
  "nutrition": {
    "calories": "عدد السعرات",
    "protein": "عدد غرام البروتين",
    "fat": "عدد غرام الدهون",
    "carbs": "عدد غرام الكربوهيدرات"
  }
}

أكتب الوصفة أولاً كنص منسق كله باللغة العريية، ثم بعدها JSON. لا تكتب أي شيء آخر.` + "\n            "
)

// BuildRecipePrompt interpolates the ingredient list into the recipe template
func BuildRecipePrompt(ingredients string) string {
	var b strings.Builder
	b.Grow(len(recipePromptIntro) + len(ingredients) + len(recipePromptLayout))
	b.WriteString(recipePromptIntro)
	b.WriteString(ingredients)
	b.WriteString(recipePromptLayout)
	return b.String()
}
