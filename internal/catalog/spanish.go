package catalog

var spanishCategories = []categoryDef{
	{
		key:   "family",
		title: "Familia",
		words: []string{"mamá", "papá", "bebé", "abuela", "abuelo", "hermano", "hermana", "tía", "tío"},
	},
	{
		key:   "food",
		title: "Comida",
		words: []string{"leche", "agua", "plátano", "manzana", "pan", "galleta", "jugo", "queso", "huevo", "papilla"},
	},
	{
		key:   "actions",
		title: "Acciones",
		words: []string{"comer", "beber", "dormir", "jugar", "ir", "subir", "bajar", "correr", "saltar", "abrazo", "beso", "más"},
	},
	{
		key:   "body",
		title: "Cuerpo",
		words: []string{"cabeza", "ojos", "nariz", "boca", "orejas", "manos", "pies", "barriga", "pelo", "dientes"},
	},
	{
		key:   "toys",
		title: "Juguetes",
		words: []string{"pelota", "carro", "muñeca", "libro", "bloques", "osito", "tren", "burbujas"},
	},
	{
		key:   "colors",
		title: "Colores",
		words: []string{"rojo", "azul", "amarillo", "verde", "naranja", "morado", "rosa", "negro", "blanco"},
	},
	{
		key:   "animals",
		title: "Animales",
		words: []string{"perro", "gato", "pájaro", "pez", "vaca", "caballo", "pato", "cerdo", "oveja", "león", "conejo"},
	},
	{
		key:   "greetings",
		title: "Saludos",
		words: []string{"hola", "adiós", "por favor", "gracias", "sí", "no", "buenas noches"},
	},
	{
		key:   OtherCategoryKey,
		title: "Otros",
		words: []string{},
	},
}
