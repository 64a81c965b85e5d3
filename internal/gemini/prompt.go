package gemini

import "strings"

// BuildPrompt assembles the instruction sent alongside every image. The
// response contract it states (JSON object, "title" + "alt_text" keys) is
// what ParseAnnotation expects back. Hint tags, when present, are appended
// as a keyword-context paragraph; they bias the output but are never
// echoed into it verbatim by contract.
func BuildPrompt(tags []string) string {
	var b strings.Builder
	b.WriteString("You are an SEO specialist for painting companies across the US. ")
	b.WriteString("Analyze this image and return ONLY a JSON object with two keys:\n")
	b.WriteString(`  "title": A short, SEO-friendly title (2-5 words) suitable as a web page title and filename. `)
	b.WriteString("Use title case. Examples: 'Exterior House Painting', 'Interior Door Painting', 'White Brick Exterior Home Painting'.\n")
	b.WriteString(`  "alt_text": An SEO-optimized alt text description under 125 characters. `)
	b.WriteString("Be descriptive of colors, setting, and objects. Naturally include painting/staining related keywords.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Analyze the VISUAL content, not the filename.\n")
	b.WriteString("- Title should work as a filename (no special characters besides spaces).\n")
	b.WriteString("- Alt text must be under 125 characters.\n")
	b.WriteString("- Return ONLY valid JSON, no markdown, no explanation.\n")

	if len(tags) > 0 {
		b.WriteString("\n\nContext: This image is from a painting company's portfolio. ")
		b.WriteString("The likely categories are: ")
		b.WriteString(strings.Join(tags, ", "))
		b.WriteString(". Use these as SEO keyword hints if they match the visual content.")
	}
	return b.String()
}
