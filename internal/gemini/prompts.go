package gemini

// SummarizerSystemInstruction establishes the assistant's role for summary
// generation. It is fixed: per-request text carries only the conversation
// lines and the bullet-point instruction.
const SummarizerSystemInstruction = `You are a precise assistant that summarizes Telegram conversations. Create concise, informative summaries that capture the key points and maintain conversation context. Respond only with the summary itself, one point per line.`
