package catalog

// products is the bundled catalog. Sourced from the DummyJSON product
// set, trimmed to the fields shopfront uses.
var products = []Product{
	{ID: 1, Name: "Essence Mascara Lash Princess", Price: 9.99, Category: "beauty", Image: "https://cdn.dummyjson.com/product-images/beauty/essence-mascara-lash-princess/thumbnail.webp", Rating: 2.56, Stock: 99},
	{ID: 2, Name: "Eyeshadow Palette with Mirror", Price: 19.99, Category: "beauty", Image: "https://cdn.dummyjson.com/product-images/beauty/eyeshadow-palette-with-mirror/thumbnail.webp", Rating: 2.86, Stock: 34},
	{ID: 3, Name: "Powder Canister", Price: 14.99, Category: "beauty", Image: "https://cdn.dummyjson.com/product-images/beauty/powder-canister/thumbnail.webp", Rating: 4.64, Stock: 89},
	{ID: 4, Name: "Red Lipstick", Price: 12.99, Category: "beauty", Image: "https://cdn.dummyjson.com/product-images/beauty/red-lipstick/thumbnail.webp", Rating: 4.36, Stock: 91},
	{ID: 5, Name: "Red Nail Polish", Price: 8.99, Category: "beauty", Image: "https://cdn.dummyjson.com/product-images/beauty/red-nail-polish/thumbnail.webp", Rating: 4.32, Stock: 79},
	{ID: 6, Name: "Calvin Klein CK One", Price: 49.99, Category: "fragrances", Image: "https://cdn.dummyjson.com/product-images/fragrances/calvin-klein-ck-one/thumbnail.webp", Rating: 4.37, Stock: 29},
	{ID: 7, Name: "Chanel Coco Noir Eau De", Price: 129.99, Category: "fragrances", Image: "https://cdn.dummyjson.com/product-images/fragrances/chanel-coco-noir-eau-de/thumbnail.webp", Rating: 4.26, Stock: 58},
	{ID: 8, Name: "Dior J'adore", Price: 89.99, Category: "fragrances", Image: "https://cdn.dummyjson.com/product-images/fragrances/dior-j'adore/thumbnail.webp", Rating: 3.8, Stock: 98},
	{ID: 9, Name: "Dolce Shine Eau de", Price: 69.99, Category: "fragrances", Image: "https://cdn.dummyjson.com/product-images/fragrances/dolce-shine-eau-de/thumbnail.webp", Rating: 3.96, Stock: 4},
	{ID: 10, Name: "Gucci Bloom Eau de", Price: 79.99, Category: "fragrances", Image: "https://cdn.dummyjson.com/product-images/fragrances/gucci-bloom-eau-de/thumbnail.webp", Rating: 2.74, Stock: 91},
	{ID: 11, Name: "Annibale Colombo Bed", Price: 1899.99, Category: "furniture", Image: "https://cdn.dummyjson.com/product-images/furniture/annibale-colombo-bed/thumbnail.webp", Rating: 4.77, Stock: 88},
	{ID: 12, Name: "Annibale Colombo Sofa", Price: 2499.99, Category: "furniture", Image: "https://cdn.dummyjson.com/product-images/furniture/annibale-colombo-sofa/thumbnail.webp", Rating: 3.92, Stock: 60},
	{ID: 13, Name: "Bedside Table African Cherry", Price: 299.99, Category: "furniture", Image: "https://cdn.dummyjson.com/product-images/furniture/bedside-table-african-cherry/thumbnail.webp", Rating: 2.87, Stock: 64},
	{ID: 14, Name: "Knoll Saarinen Executive Conference Chair", Price: 499.99, Category: "furniture", Image: "https://cdn.dummyjson.com/product-images/furniture/knoll-saarinen-executive-conference-chair/thumbnail.webp", Rating: 4.88, Stock: 26},
	{ID: 15, Name: "Wooden Bathroom Sink With Mirror", Price: 799.99, Category: "furniture", Image: "https://cdn.dummyjson.com/product-images/furniture/wooden-bathroom-sink-with-mirror/thumbnail.webp", Rating: 3.59, Stock: 7},
	{ID: 16, Name: "Apple", Price: 1.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/apple/thumbnail.webp", Rating: 4.19, Stock: 8},
	{ID: 17, Name: "Beef Steak", Price: 12.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/beef-steak/thumbnail.webp", Rating: 4.47, Stock: 86},
	{ID: 18, Name: "Cat Food", Price: 8.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/cat-food/thumbnail.webp", Rating: 3.13, Stock: 46},
	{ID: 19, Name: "Chicken Meat", Price: 9.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/chicken-meat/thumbnail.webp", Rating: 3.19, Stock: 97},
	{ID: 20, Name: "Cooking Oil", Price: 4.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/cooking-oil/thumbnail.webp", Rating: 4.8, Stock: 10},
	{ID: 21, Name: "Cucumber", Price: 1.49, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/cucumber/thumbnail.webp", Rating: 3.31, Stock: 29},
	{ID: 22, Name: "Dog Food", Price: 10.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/dog-food/thumbnail.webp", Rating: 4.79, Stock: 40},
	{ID: 23, Name: "Eggs", Price: 2.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/eggs/thumbnail.webp", Rating: 4.23, Stock: 37},
	{ID: 24, Name: "Fish Steak", Price: 14.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/fish-steak/thumbnail.webp", Rating: 3.83, Stock: 99},
	{ID: 25, Name: "Green Bell Pepper", Price: 1.29, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/green-bell-pepper/thumbnail.webp", Rating: 4.28, Stock: 89},
	{ID: 26, Name: "Green Chili Pepper", Price: 0.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/green-chili-pepper/thumbnail.webp", Rating: 4.43, Stock: 8},
	{ID: 27, Name: "Honey Jar", Price: 6.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/honey-jar/thumbnail.webp", Rating: 3.5, Stock: 25},
	{ID: 28, Name: "Ice Cream", Price: 5.49, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/ice-cream/thumbnail.webp", Rating: 3.77, Stock: 76},
	{ID: 29, Name: "Juice", Price: 3.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/juice/thumbnail.webp", Rating: 3.41, Stock: 99},
	{ID: 30, Name: "Kiwi", Price: 2.49, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/kiwi/thumbnail.webp", Rating: 4.37, Stock: 1},
	{ID: 31, Name: "Lemon", Price: 0.79, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/lemon/thumbnail.webp", Rating: 4.68, Stock: 0},
	{ID: 32, Name: "Milk", Price: 3.49, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/milk/thumbnail.webp", Rating: 3.97, Stock: 57},
	{ID: 33, Name: "Mulberry", Price: 4.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/mulberry/thumbnail.webp", Rating: 3.19, Stock: 79},
	{ID: 34, Name: "Nescafe Coffee", Price: 7.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/nescafe-coffee/thumbnail.webp", Rating: 2.54, Stock: 22},
	{ID: 35, Name: "Potatoes", Price: 2.29, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/potatoes/thumbnail.webp", Rating: 4.22, Stock: 8},
	{ID: 36, Name: "Protein Powder", Price: 19.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/protein-powder/thumbnail.webp", Rating: 3.91, Stock: 65},
	{ID: 37, Name: "Red Onions", Price: 1.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/red-onions/thumbnail.webp", Rating: 4.08, Stock: 86},
	{ID: 38, Name: "Rice", Price: 5.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/rice/thumbnail.webp", Rating: 3.94, Stock: 49},
	{ID: 39, Name: "Soft Drinks", Price: 1.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/soft-drinks/thumbnail.webp", Rating: 4.59, Stock: 78},
	{ID: 40, Name: "Strawberry", Price: 3.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/strawberry/thumbnail.webp", Rating: 4.5, Stock: 9},
	{ID: 41, Name: "Tissue Paper Box", Price: 2.49, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/tissue-paper-box/thumbnail.webp", Rating: 4.55, Stock: 97},
	{ID: 42, Name: "Water", Price: 0.99, Category: "groceries", Image: "https://cdn.dummyjson.com/product-images/groceries/water/thumbnail.webp", Rating: 2.93, Stock: 95},
	{ID: 43, Name: "Decoration Swing", Price: 59.99, Category: "home-decoration", Image: "https://cdn.dummyjson.com/product-images/home-decoration/decoration-swing/thumbnail.webp", Rating: 4.74, Stock: 62},
	{ID: 44, Name: "Family Tree Photo Frame", Price: 29.99, Category: "home-decoration", Image: "https://cdn.dummyjson.com/product-images/home-decoration/family-tree-photo-frame/thumbnail.webp", Rating: 4.72, Stock: 54},
	{ID: 45, Name: "House Showpiece Plant", Price: 39.99, Category: "home-decoration", Image: "https://cdn.dummyjson.com/product-images/home-decoration/house-showpiece-plant/thumbnail.webp", Rating: 4.29, Stock: 89},
	{ID: 46, Name: "Plant Pot", Price: 14.99, Category: "home-decoration", Image: "https://cdn.dummyjson.com/product-images/home-decoration/plant-pot/thumbnail.webp", Rating: 3.33, Stock: 47},
	{ID: 47, Name: "Table Lamp with Wooden Base", Price: 24.99, Category: "home-decoration", Image: "https://cdn.dummyjson.com/product-images/home-decoration/table-lamp-with-wooden-base/thumbnail.webp", Rating: 4.82, Stock: 84},
	{ID: 48, Name: "Bamboo Spatula", Price: 7.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/bamboo-spatula/thumbnail.webp", Rating: 4.4, Stock: 0},
	{ID: 49, Name: "Black Aluminium Cup", Price: 5.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/black-aluminium-cup/thumbnail.webp", Rating: 3.62, Stock: 42},
	{ID: 50, Name: "Black Whisk", Price: 9.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/black-whisk/thumbnail.webp", Rating: 2.88, Stock: 17},
	{ID: 51, Name: "Boxed Blender", Price: 39.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/boxed-blender/thumbnail.webp", Rating: 2.73, Stock: 81},
	{ID: 52, Name: "Carbon Steel Wok", Price: 29.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/carbon-steel-wok/thumbnail.webp", Rating: 4.32, Stock: 2},
	{ID: 53, Name: "Chopping Board", Price: 12.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/chopping-board/thumbnail.webp", Rating: 4.55, Stock: 83},
	{ID: 54, Name: "Citrus Squeezer Yellow", Price: 8.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/citrus-squeezer-yellow/thumbnail.webp", Rating: 4.18, Stock: 26},
	{ID: 55, Name: "Egg Slicer", Price: 6.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/egg-slicer/thumbnail.webp", Rating: 2.91, Stock: 50},
	{ID: 56, Name: "Electric Stove", Price: 49.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/electric-stove/thumbnail.webp", Rating: 4.25, Stock: 41},
	{ID: 57, Name: "Fine Mesh Strainer", Price: 9.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/fine-mesh-strainer/thumbnail.webp", Rating: 3.7, Stock: 13},
	{ID: 58, Name: "Fork", Price: 3.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/fork/thumbnail.webp", Rating: 4.57, Stock: 10},
	{ID: 59, Name: "Glass", Price: 4.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/glass/thumbnail.webp", Rating: 3.06, Stock: 6},
	{ID: 60, Name: "Grater Black", Price: 10.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/grater-black/thumbnail.webp", Rating: 2.87, Stock: 80},
	{ID: 61, Name: "Hand Blender", Price: 19.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/hand-blender/thumbnail.webp", Rating: 4.71, Stock: 7},
	{ID: 62, Name: "Ice Cube Tray", Price: 5.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/ice-cube-tray/thumbnail.webp", Rating: 3.27, Stock: 81},
	{ID: 63, Name: "Kitchen Sieve", Price: 7.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/kitchen-sieve/thumbnail.webp", Rating: 3.54, Stock: 46},
	{ID: 64, Name: "Knife", Price: 14.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/knife/thumbnail.webp", Rating: 4.31, Stock: 58},
	{ID: 65, Name: "Lunch Box", Price: 12.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/lunch-box/thumbnail.webp", Rating: 4.05, Stock: 26},
	{ID: 66, Name: "Microwave Oven", Price: 89.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/microwave-oven/thumbnail.webp", Rating: 3.71, Stock: 29},
	{ID: 67, Name: "Mixing Bowl", Price: 11.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/mixing-bowl/thumbnail.webp", Rating: 4.8, Stock: 38},
	{ID: 68, Name: "Mug Tree Stand", Price: 15.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/mug-tree-stand/thumbnail.webp", Rating: 4.34, Stock: 16},
	{ID: 69, Name: "Pan", Price: 24.99, Category: "kitchen-accessories", Image: "https://cdn.dummyjson.com/product-images/kitchen-accessories/pan/thumbnail.webp", Rating: 3.58, Stock: 22},
}
