package dto

// GenerateSheetRequest is the body of POST /generate-practice-sheet.
// Text is validated by the handler so empty and whitespace-only input
// share one error message.
type GenerateSheetRequest struct {
	Text string `json:"text"`
}

// GenerateSheetResponse points the client at the download endpoint.
type GenerateSheetResponse struct {
	PDFPath string `json:"pdf_path"`
}
