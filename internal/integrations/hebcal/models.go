package hebcal

// yearResponse ответ Hebcal на запрос праздников за год
type yearResponse struct {
	Title string `json:"title"`
	Items []item `json:"items"`
}

// item событие календаря Hebcal
type item struct {
	Title    string `json:"title"`
	Date     string `json:"date"` // YYYY-MM-DD или RFC3339 для зажигания свечей
	Category string `json:"category"`
	Subcat   string `json:"subcat"`
	Yomtov   bool   `json:"yomtov"` // праздник с запретом работы
	Hebrew   string `json:"hebrew"`
}
