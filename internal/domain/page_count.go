package domain

// PageCounts guarda a quantidade de páginas publicadas por tipo de conteúdo
type PageCounts struct {
	Properties int `json:"properties"`
	Listings   int `json:"listings"`
	Blogs      int `json:"blogs"`
	Policies   int `json:"policies"`
}

func (p PageCounts) Total() int {
	return p.Properties + p.Listings + p.Blogs + p.Policies
}
