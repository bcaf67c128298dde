package catalog

// GetCharacters returns the playable roster relics can be rated for.
func GetCharacters() []Character {
	return characters
}

var characters = []Character{
	{ID: "Seele", Name: "Seele", Icon: "assets/characters/seele.webp"},
	{ID: "Bronya", Name: "Bronya", Icon: "assets/characters/bronya.webp"},
	{ID: "Gepard", Name: "Gepard", Icon: "assets/characters/gepard.webp"},
	{ID: "Clara", Name: "Clara", Icon: "assets/characters/clara.webp"},
	{ID: "Himeko", Name: "Himeko", Icon: "assets/characters/himeko.webp"},
	{ID: "Welt", Name: "Welt", Icon: "assets/characters/welt.webp"},
	{ID: "Yanqing", Name: "Yanqing", Icon: "assets/characters/yanqing.webp"},
	{ID: "Tingyun", Name: "Tingyun", Icon: "assets/characters/tingyun.webp"},
	{ID: "Bailu", Name: "Bailu", Icon: "assets/characters/bailu.webp"},
	{ID: "Jing Yuan", Name: "Jing Yuan", Icon: "assets/characters/jingyuan.webp"},
	{ID: "March 7th", Name: "March 7th", Icon: "assets/characters/march7th.webp"},
	{ID: "Dan Heng", Name: "Dan Heng", Icon: "assets/characters/danheng.webp"},
	{ID: "Kafka", Name: "Kafka", Icon: "assets/characters/kafka.webp"},
	{ID: "Silver Wolf", Name: "Silver Wolf", Icon: "assets/characters/silverwolf.webp"},
}
