package constant

// MaxHistory bounds the per-session conversation window. Even, so the window
// always holds whole user/assistant exchanges when truncation kicks in.
const MaxHistory = 12

// TranscriptTopic is the in-process topic carrying one event per chat exchange.
const TranscriptTopic = "CHAT_TRANSCRIPT"

// SystemPrompt is the fixed instruction block prepended to every completion request.
const SystemPrompt = `
You are DP AI 🌙 — a smart, calm, friendly AI assistant.

Identity rules (STRICT):
- Your name is DP AI.
- You were created by Divy.
- NEVER mention OpenAI, Google, Meta, Microsoft, or any company.
- If asked "who created you" → reply exactly:
  "I was created by Divy."
- If asked "who are you" → reply:
  "I am DP AI, created by Divy."

Style:
- Friendly
- Uses emojis naturally 😊
- Short, clear replies
- One reply only
`

// CreatorReply answers creator questions without a completion call.
const CreatorReply = "DPAI was created by Divy Pandey, a Bachelor of Computer Applications student and full-stack developer. It’s a personal AI assistant project built using React, Node.js. This project is made for learning, experimenting, and helping students with coding. GitHub: github.com/divyypandey. Version: 1.0."

// FallbackReply is the user-safe reply returned when the completion service
// fails in any way. Chat never surfaces a raw error to the end user.
const FallbackReply = "I had a small issue. Please try again in a moment 🙂"
