package googlegenai

const answerTemplate = `
You are a helpful AI assistant with access to the following web search
results for context.

Web Search Context:
%s

User Question: %s

Provide a comprehensive, accurate answer based on the web context and your
knowledge. Be concise but complete. Format your answer in clear paragraphs.
`

const noContextPlaceholder = "No web results found."

const scoreTemplate = `
You are an expert answer evaluator. Compare the AI-generated answer with the
user's expected answer for the given question.

Question: %s

AI Answer:
%s

User's Expected Answer:
%s

Evaluate on these 4 dimensions (each 0-25 points):
1. Factual Accuracy (0-25): Is the AI answer factually correct?
2. Completeness (0-25): Does the AI answer cover what was expected?
3. Relevance (0-25): Does the AI answer address the question directly?
4. Clarity (0-25): Is the AI answer well-explained?

Answer according to the provided schema. The factual_accuracy, completeness,
relevance and clarity fields are integer scores between 0 and 25. The
feedback field should contain 2-3 sentences explaining the scores and key
differences. The matches_expected field should be true only if the AI answer
agrees with the expected answer on substance.
`
