package catalog

var portugueseCategories = []categoryDef{
	{
		key:   "family",
		title: "Família",
		words: []string{"mamãe", "papai", "bebê", "vovó", "vovô", "irmão", "irmã", "tia", "tio"},
	},
	{
		key:   "food",
		title: "Comida",
		words: []string{"leite", "água", "banana", "maçã", "pão", "biscoito", "suco", "queijo", "ovo", "papinha"},
	},
	{
		key:   "actions",
		title: "Ações",
		words: []string{"comer", "beber", "dormir", "brincar", "ir", "subir", "descer", "correr", "pular", "abraço", "beijo", "mais"},
	},
	{
		key:   "body",
		title: "Corpo",
		words: []string{"cabeça", "olhos", "nariz", "boca", "orelhas", "mãos", "pés", "barriga", "cabelo", "dentes"},
	},
	{
		key:   "toys",
		title: "Brinquedos",
		words: []string{"bola", "carro", "boneca", "livro", "blocos", "ursinho", "trem", "bolinha de sabão"},
	},
	{
		key:   "colors",
		title: "Cores",
		words: []string{"vermelho", "azul", "amarelo", "verde", "laranja", "roxo", "rosa", "preto", "branco"},
	},
	{
		key:   "animals",
		title: "Animais",
		words: []string{"cachorro", "gato", "passarinho", "peixe", "vaca", "cavalo", "pato", "porco", "ovelha", "leão", "coelho"},
	},
	{
		key:   "greetings",
		title: "Saudações",
		words: []string{"oi", "olá", "tchau", "por favor", "obrigado", "sim", "não", "boa noite"},
	},
	{
		key:   "places",
		title: "Lugares",
		words: []string{"casa", "escola", "parque", "praia", "rua", "loja"},
	},
	{
		key:   OtherCategoryKey,
		title: "Outros",
		words: []string{},
	},
}
