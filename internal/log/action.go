package log

const (
	RegisterAuthor   = "register_author"
	ChangeAuthorInfo = "change_author_info"
	GetAuthorInfo    = "get_author_info"
	AddBook          = "add_book"
	UpdateBook       = "update_book"
	GetBookInfo      = "get_book_info"
	GetAuthorBooks   = "get_author_books"
)
