// Package vcxml streams Visual Studio project XML through a chain of
// transform stages while reproducing every region the stages do not touch
// byte-for-byte: no re-indentation, no attribute-quote normalization, no
// reordering, no line-ending changes.
//
// The pipeline is Lexer -> Parser -> Stage... -> Serializer. Every event
// the Parser emits carries its exact originating source span; the
// Serializer replays those spans verbatim and only re-encodes events a
// stage synthesized itself. Output diffs therefore show exactly what a
// stage changed and nothing else.
package vcxml
