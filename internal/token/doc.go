// Package token defines lexical token kinds for spreadsheet formula text.
// Invariants:
//   - Token.Text is the literal substring the token represents. After
//     reference fusing a Name token may span what was originally several
//     raw tokens (e.g. "$Sheet1.A1" or "A1:B2").
//   - Token.Span matches the covered source bytes (Start..End).
//   - Comments ("#..." artifacts of external file references) are regular
//     stream tokens, not trivia: the resolver keys off their position.
//   - Function names (SUM, IF, ...) are plain Name tokens. They are told
//     apart from cell references by the resolver, not the lexer.
package token
