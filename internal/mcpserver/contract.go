package mcpserver

// InstructionFormatContract describes the improvement-instruction format
// that LLM consumers receive from content audits and should follow when
// applying changes.
const InstructionFormatContract = `# Sowilo Instruction Format Contract

Every content audit returns a list of improvement instructions. Each
instruction is a JSON object with this shape:

` + "```" + `json
{
  "action": "replace",
  "target": "heading",
  "value": "## Getting started",
  "reason": "Multiple H1 headings found; only one is allowed per document",
  "priority": "high",
  "category": "structure",
  "automated": true
}
` + "```" + `

## Fields

1. **` + "`" + `action` + "`" + `** is one of ` + "`" + `add` + "`" + `, ` + "`" + `remove` + "`" + `, ` + "`" + `replace` + "`" + `, ` + "`" + `split` + "`" + `.
   - ` + "`" + `add` + "`" + ` introduces new content (a heading, a paragraph, a frontmatter field).
   - ` + "`" + `remove` + "`" + ` deletes the content named in ` + "`" + `target` + "`" + `.
   - ` + "`" + `replace` + "`" + ` swaps the content named in ` + "`" + `target` + "`" + ` for ` + "`" + `value` + "`" + `.
   - ` + "`" + `split` + "`" + ` breaks the content named in ` + "`" + `target` + "`" + ` into smaller units
     (a long sentence into two, a long paragraph into several).
2. **` + "`" + `target` + "`" + `** names what to act on. It is either a structural location
   (` + "`" + `content` + "`" + `, ` + "`" + `first paragraph` + "`" + `, ` + "`" + `frontmatter.description` + "`" + `, ` + "`" + `headings` + "`" + `) or a
   snippet of the offending text.
3. **` + "`" + `value` + "`" + `** is the suggested replacement or addition. It may be empty when
   the fix requires human judgement; in that case follow ` + "`" + `reason` + "`" + `.
4. **` + "`" + `reason` + "`" + `** explains why the instruction was emitted. Always read it
   before applying the change.
5. **` + "`" + `priority` + "`" + `** is ` + "`" + `critical` + "`" + `, ` + "`" + `high` + "`" + `, ` + "`" + `medium` + "`" + `, or ` + "`" + `low` + "`" + `.
   Instructions arrive sorted by priority. Apply critical items first.
6. **` + "`" + `category` + "`" + `** is ` + "`" + `seo` + "`" + `, ` + "`" + `readability` + "`" + `, or ` + "`" + `structure` + "`" + `.
7. **` + "`" + `automated` + "`" + `** is ` + "`" + `true` + "`" + ` when ` + "`" + `value` + "`" + ` can be applied verbatim without
   human review (for example a ready-made H1 line or meta description).

## Rules

- Apply instructions in the order given; the list is sorted with a stable
  sort, so items of equal priority keep their original analysis order.
- Never apply an instruction whose ` + "`" + `reason` + "`" + ` no longer holds after earlier
  edits (e.g. a second H1 you already removed).
- When ` + "`" + `automated` + "`" + ` is false, treat ` + "`" + `value` + "`" + ` as a starting point, not a
  final answer.
- Preserve YAML frontmatter fences and field ordering when editing
  frontmatter fields.
- Re-run the audit after applying a batch of changes; scores and the
  instruction list are deterministic for identical input.

## Example

A document with no H1 and a thin first section might yield:

` + "```" + `json
[
  {
    "action": "add",
    "target": "headings",
    "value": "# Choosing a standing desk",
    "reason": "Document has no H1 heading",
    "priority": "critical",
    "category": "structure",
    "automated": true
  },
  {
    "action": "add",
    "target": "first paragraph",
    "value": "",
    "reason": "Target keyword \"standing desk\" does not appear in the first paragraph",
    "priority": "medium",
    "category": "seo",
    "automated": false
  }
]
` + "```" + `
`
