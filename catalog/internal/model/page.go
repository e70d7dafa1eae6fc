package model

// Page types are the data handed to the view renderer.

type IndexPage struct {
	Title                      string
	BookCount                  int
	BookInstanceCount          int
	BookInstanceAvailableCount int
	AuthorCount                int
	GenreCount                 int
}

type AuthorListPage struct {
	Title   string
	Authors []Author
}

type AuthorDetailPage struct {
	Title  string
	Author Author
	Books  []Book
}

type AuthorFormPage struct {
	Title  string
	Author AuthorInput
	Errors []FieldError
}

type AuthorDeletePage struct {
	Title  string
	Author Author
	Books  []Book
}

type GenreListPage struct {
	Title  string
	Genres []Genre
}

type GenreDetailPage struct {
	Title string
	Genre Genre
	Books []Book
}

type GenreFormPage struct {
	Title  string
	Genre  GenreInput
	Errors []FieldError
}

type GenreDeletePage struct {
	Title string
	Genre Genre
	Books []Book
}

type BookListPage struct {
	Title string
	Books []Book
}

type BookDetailPage struct {
	Title     string
	Book      Book
	Instances []BookInstance
}

type AuthorOption struct {
	Author
	Selected bool
}

type GenreOption struct {
	Genre
	Checked bool
}

type BookFormPage struct {
	Title   string
	Book    BookInput
	Authors []AuthorOption
	Genres  []GenreOption
	Errors  []FieldError
}

type BookDeletePage struct {
	Title     string
	Book      Book
	Instances []BookInstance
}

type BookInstanceListPage struct {
	Title     string
	Instances []BookInstance
}

type BookInstanceDetailPage struct {
	Title    string
	Instance BookInstance
}

type BookOption struct {
	Book
	Selected bool
}

type BookInstanceFormPage struct {
	Title    string
	Instance BookInstanceInput
	Books    []BookOption
	Statuses []Status
	Errors   []FieldError
}

type BookInstanceDeletePage struct {
	Title    string
	Instance BookInstance
}

type ErrorPage struct {
	Title   string
	Status  int
	Message string
	Detail  string
}
