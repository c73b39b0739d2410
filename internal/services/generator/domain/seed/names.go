package seed

// Character and place names used to build seed strings.
var names = []string{
	"Ayla",
	"Azala",
	"Belthasar",
	"Cedric",
	"Crono",
	"Cyrus",
	"Dalton",
	"Doan",
	"Doreen",
	"Elaine",
	"Fiona",
	"Flea",
	"Fritz",
	"Frog",
	"Gaspar",
	"Gato",
	"Heckran",
	"Johnny",
	"Kino",
	"Lavos",
	"Leene",
	"Lucca",
	"Magus",
	"Marle",
	"Masa",
	"Melchior",
	"Mune",
	"Nizbel",
	"Ozzie",
	"Queen",
	"Robo",
	"Schala",
	"Slash",
	"Spekkio",
	"Taban",
	"Tata",
	"Toma",
	"Zeal",
	"Zombor",
}
