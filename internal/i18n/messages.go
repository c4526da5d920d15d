package i18n

var languageNames = map[string]string{
	"en": "English",
	"es": "Español",
}

var messages = map[string]map[string]string{
	"en": {
		"title.home":        "Home | AG Stats",
		"title.leaderboard": "Leaderboard | AG Stats",
		"title.match":       "Match %d | AG Stats",
		"title.player":      "%s | AG Stats",
		"title.error":       "Error | AG Stats",

		"navbar.home":         "Home",
		"navbar.leaderboard":  "Leaderboard",
		"navbar.search":       "Search players",
		"navbar.search_error": "Search failed, try again",
		"navbar.language":     "Language",

		"home.title":               "Adrenaline Gamer statistics",
		"home.subtitle":            "Ratings, scoreboards and match history for every player.",
		"home.view_rankings":       "View rankings",
		"home.view_rankings_desc":  "See who sits on top of the global leaderboard.",
		"home.browse_matches":      "Find a player",
		"home.browse_matches_desc": "Search by Steam name and open a profile.",
		"home.stats_title":         "Every match counts",
		"home.stats_desc":          "Ratings move after each match based on how you played.",
		"home.recent_title":        "Recently viewed players",
		"home.recent_empty":        "Nobody has been looked up yet.",

		"leaderboard.global":         "Global leaderboard",
		"leaderboard.rank":           "Rank",
		"leaderboard.player":         "Player",
		"leaderboard.steam_id":       "Steam ID",
		"leaderboard.matches_played": "Matches",
		"leaderboard.win_rate":       "Win rate",
		"leaderboard.rating":         "Rating",
		"leaderboard.rows_per_page":  "Rows per page",
		"leaderboard.empty":          "No players on this page.",

		"match.blue_team":    "Blue team",
		"match.red_team":     "Red team",
		"match.winner":       "Winner",
		"match.draw":         "Draw",
		"match.total_frags":  "Total frags",
		"match.total_deaths": "Total deaths",
		"match.map":          "Map",
		"match.server":       "Server",
		"match.date":         "Date",
		"match.type":         "Mode",
		"match.player":       "Player",
		"match.frags":        "Frags",
		"match.deaths":       "Deaths",
		"match.ping":         "Ping",
		"match.damage_dealt": "Damage dealt",
		"match.damage_taken": "Damage taken",
		"match.rating_delta": "Rating",
		"match.missing_id":   "Must provide a match id in the path.",

		"player.rating":         "Rating",
		"player.matches_played": "Matches played",
		"player.wins":           "Wins",
		"player.losses":         "Losses",
		"player.win_rate":       "Win rate",
		"player.kd_ratio":       "K/D ratio",
		"player.frags":          "Frags",
		"player.deaths":         "Deaths",
		"player.rating_history": "Rating history",
		"player.no_rating_data": "No rating data yet.",
		"player.match_history":  "Match history",
		"player.no_matches":     "No matches on this page.",
		"player.map":            "Map",
		"player.date":           "Date",
		"player.rating_after":   "Rating after",
		"player.rating_delta":   "Change",
		"player.missing_id":     "Must provide an account id in the path.",

		"pagination.previous": "Previous",
		"pagination.next":     "Next",
		"pagination.page":     "Page %d",

		"error.leaderboard":    "Failed to fetch data from server.",
		"error.match":          "Failed to fetch match data from server.",
		"error.match_missing":  "This match does not exist.",
		"error.player_profile": "Failed to fetch user profile data from server.",
		"error.player_missing": "This player does not exist.",
		"error.player_history": "Failed to fetch player rating history.",
		"error.player_matches": "Failed to fetch player match history.",
		"error.generic":        "Something went wrong.",
		"error.not_found":      "Page not found.",
		"error.bad_page":       "That page does not exist.",
	},
	"es": {
		"title.home":        "Inicio | AG Stats",
		"title.leaderboard": "Clasificación | AG Stats",
		"title.match":       "Partida %d | AG Stats",
		"title.player":      "%s | AG Stats",
		"title.error":       "Error | AG Stats",

		"navbar.home":         "Inicio",
		"navbar.leaderboard":  "Clasificación",
		"navbar.search":       "Buscar jugadores",
		"navbar.search_error": "La búsqueda falló, inténtalo de nuevo",
		"navbar.language":     "Idioma",

		"home.title":               "Estadísticas de Adrenaline Gamer",
		"home.subtitle":            "Ratings, marcadores e historial de partidas de cada jugador.",
		"home.view_rankings":       "Ver clasificación",
		"home.view_rankings_desc":  "Mira quién lidera la clasificación global.",
		"home.browse_matches":      "Buscar un jugador",
		"home.browse_matches_desc": "Busca por nombre de Steam y abre su perfil.",
		"home.stats_title":         "Cada partida cuenta",
		"home.stats_desc":          "El rating cambia tras cada partida según tu desempeño.",
		"home.recent_title":        "Jugadores vistos recientemente",
		"home.recent_empty":        "Todavía no se ha consultado a nadie.",

		"leaderboard.global":         "Clasificación global",
		"leaderboard.rank":           "Puesto",
		"leaderboard.player":         "Jugador",
		"leaderboard.steam_id":       "Steam ID",
		"leaderboard.matches_played": "Partidas",
		"leaderboard.win_rate":       "Victorias",
		"leaderboard.rating":         "Rating",
		"leaderboard.rows_per_page":  "Filas por página",
		"leaderboard.empty":          "No hay jugadores en esta página.",

		"match.blue_team":    "Equipo azul",
		"match.red_team":     "Equipo rojo",
		"match.winner":       "Ganador",
		"match.draw":         "Empate",
		"match.total_frags":  "Frags totales",
		"match.total_deaths": "Muertes totales",
		"match.map":          "Mapa",
		"match.server":       "Servidor",
		"match.date":         "Fecha",
		"match.type":         "Modo",
		"match.player":       "Jugador",
		"match.frags":        "Frags",
		"match.deaths":       "Muertes",
		"match.ping":         "Ping",
		"match.damage_dealt": "Daño hecho",
		"match.damage_taken": "Daño recibido",
		"match.rating_delta": "Rating",
		"match.missing_id":   "Debes indicar un id de partida en la ruta.",

		"player.rating":         "Rating",
		"player.matches_played": "Partidas jugadas",
		"player.wins":           "Victorias",
		"player.losses":         "Derrotas",
		"player.win_rate":       "Porcentaje de victorias",
		"player.kd_ratio":       "Ratio K/D",
		"player.frags":          "Frags",
		"player.deaths":         "Muertes",
		"player.rating_history": "Historial de rating",
		"player.no_rating_data": "Aún no hay datos de rating.",
		"player.match_history":  "Historial de partidas",
		"player.no_matches":     "No hay partidas en esta página.",
		"player.map":            "Mapa",
		"player.date":           "Fecha",
		"player.rating_after":   "Rating final",
		"player.rating_delta":   "Cambio",
		"player.missing_id":     "Debes indicar un id de cuenta en la ruta.",

		"pagination.previous": "Anterior",
		"pagination.next":     "Siguiente",
		"pagination.page":     "Página %d",

		"error.leaderboard":    "No se pudieron obtener los datos del servidor.",
		"error.match":          "No se pudieron obtener los datos de la partida.",
		"error.match_missing":  "Esta partida no existe.",
		"error.player_profile": "No se pudo obtener el perfil del jugador.",
		"error.player_missing": "Este jugador no existe.",
		"error.player_history": "No se pudo obtener el historial de rating.",
		"error.player_matches": "No se pudo obtener el historial de partidas.",
		"error.generic":        "Algo salió mal.",
		"error.not_found":      "Página no encontrada.",
		"error.bad_page":       "Esa página no existe.",
	},
}

// plurals holds count-dependent messages as one/other forms.
var plurals = map[string]map[string][2]string{
	"en": {
		"match.unassigned": {
			"%d player had no recognized side and is not shown.",
			"%d players had no recognized side and are not shown.",
		},
	},
	"es": {
		"match.unassigned": {
			"%d jugador no tiene un equipo reconocido y no se muestra.",
			"%d jugadores no tienen un equipo reconocido y no se muestran.",
		},
	},
}
