package schema

// Source spreadsheets are maintained by hand and header spellings drift
// between tournament editions. Each canonical field therefore carries an
// ordered alias list; the first alias present in a row with a non-empty
// value wins. Lists mix Portuguese and English spellings plus upper-case
// forms because all have been observed in real exports.

// nameAliases are the generic fallbacks for a dimension table's name
// column when the table-specific key is absent.
var nameAliases = []string{
	"Nome", "Name", "Personagem", "Pet", "Item", "Arma", "Safe", "Habilidade",
	"NOME", "NAME", "PERSONAGEM", "PET", "ITEM", "ARMA", "SAFE", "HABILIDADE",
}

// imageAliases cover the image/URL column of every dimension table.
var imageAliases = []string{
	"IMG", "Img", "img", "Imagem", "URL", "Url", "url", "Link",
	"IMAGEM", "IMAGE", "LINK",
}

var detailAliases = map[string][]string{
	"team":          {"TIME", "Time", "Equipe"},
	"map":           {"MAPA", "Mapa"},
	"round":         {"RD", "Rd", "Rodada"},
	"confrontation": {"CONFRONTO", "Confronto"},
	"points":        {"PTS", "Pts"},
	"placementPts":  {"PTSC", "PTS/C", "Ptsc"},
	"placement":     {"POS", "Pos"},
	"kills":         {"ABTS", "Abts", "Abates"},
	"booyahs":       {"B", "Booyah"},
	"matches":       {"S", "Partida", "Quedas"},
}

var killFeedAliases = map[string][]string{
	"killer":        {"PLAYER", "Player", "Jogador"},
	"victim":        {"VITIMA", "Vitima", "VÍTIMA"},
	"weapon":        {"ARMA", "Arma"},
	"safe":          {"SAFE", "Safe"},
	"map":           {"MAPA", "Mapa"},
	"round":         {"RD", "Rd"},
	"confrontation": {"CONFRONTO", "Confronto"},
	"time":          {"Tempo", "TEMPO"},
}

var playerStatAliases = map[string][]string{
	"player":  {"PLAYER", "Player", "Jogador"},
	"team":    {"TIME", "Time", "Equipe"},
	"matches": {"S", "Partida", "Quedas"},
	"kills":   {"Abates", "ABATES", "ABTS"},
	"map":     {"MAPA", "Mapa"},
	"round":   {"RD", "Rd"},
}

var loadoutAliases = map[string][]string{
	"player":        {"Player", "Jogador", "PLAYER"},
	"team":          {"Time", "Equipe", "TIME"},
	"ability1":      {"Hab1", "Hab 1"},
	"ability2":      {"Hab2", "Hab 2"},
	"ability3":      {"Hab3", "Hab 3"},
	"ability4":      {"Hab4", "Hab 4"},
	"pet":           {"Pet", "PET"},
	"item":          {"Item", "ITEM"},
	"round":         {"Rd", "RD", "Rodada"},
	"confrontation": {"Confronto", "CONFRONTO"},
	"map":           {"Mapa", "MAPA"},
	"matches":       {"S", "Partida", "Quedas"},
}

var teamRefAliases = map[string][]string{
	"name": {"TIME", "Time", "Nome", "NOME"},
}

var weaponRefAliases = map[string][]string{
	"name": {"Arma", "ARMA", "Nome", "NOME"},
}

var safeRefAliases = map[string][]string{
	"name": {"Safe", "SAFE", "Nome", "NOME"},
}
