// internal/catalog/data.go
package catalog

// Default returns the built-in company catalog. The lists are curated
// by hand, not fetched from any data source; swap this constructor for
// a real provider without touching the lookup call sites.
func Default() *Catalog {
    return New(map[string][]Entry{
        "bilreklam": {
            {Name: "Volvo Personbilar Sverige", Email: "marketing@volvocars.se", Website: "www.volvocars.se", Location: "Göteborg", ContactPerson: "Sara Lindqvist - Marknadsföringschef", CompanySize: "1000+ anställda", Notes: "Bilreklamer och events"},
            {Name: "Saab AB", Email: "marketing@saab.se", Website: "www.saab.se", Location: "Linköping", ContactPerson: "Lars Johansson - Brand Manager", CompanySize: "1000+ anställda", Notes: "Försvarsteknologi och bilkomponenter"},
            {Name: "Scania CV AB", Email: "marketing@scania.com", Website: "www.scania.com", Location: "Södertälje", ContactPerson: "Anna Petersson - Kommunikationschef", CompanySize: "1000+ anställda", Notes: "Lastbilar och reklamkampanjer"},
            {Name: "BMW Sverige", Email: "marketing@bmw.se", Website: "www.bmw.se", Location: "Stockholm", ContactPerson: "Michael Schmidt - Marknadsansvarig", CompanySize: "100-500 anställda", Notes: "Premiumbilar och events"},
            {Name: "Mercedes-Benz Sverige", Email: "marketing@mercedes-benz.se", Website: "www.mercedes-benz.se", Location: "Stockholm", ContactPerson: "Elisabeth Müller - Brand Director", CompanySize: "100-500 anställda", Notes: "Lyxbilar och reklamproduktion"},
            {Name: "Toyota Sverige", Email: "marketing@toyota.se", Website: "www.toyota.se", Location: "Stockholm", ContactPerson: "Hiroshi Tanaka - Marketing Manager", CompanySize: "200-500 anställda", Notes: "Hybrid- och elbilar"},
            {Name: "Volkswagen Sverige", Email: "marketing@vw.se", Website: "www.vw.se", Location: "Stockholm", ContactPerson: "Klaus Weber - Kommunikationschef", CompanySize: "100-500 anställda", Notes: "Folkbilar och reklammusik"},
            {Name: "Audi Sverige", Email: "marketing@audi.se", Website: "www.audi.se", Location: "Stockholm", ContactPerson: "Ingrid Hoffman - Brand Manager", CompanySize: "50-100 anställda", Notes: "Sportbilar och events"},
            {Name: "Ford Sverige", Email: "marketing@ford.se", Website: "www.ford.se", Location: "Göteborg", ContactPerson: "Robert Johnson - Marknadsföringschef", CompanySize: "50-100 anställda", Notes: "Amerikanska bilar och kampanjer"},
            {Name: "Peugeot Sverige", Email: "marketing@peugeot.se", Website: "www.peugeot.se", Location: "Stockholm", ContactPerson: "Marie Dubois - Marketing Director", CompanySize: "50-100 anställda", Notes: "Franska bilar och reklammusik"},
            {Name: "Renault Sverige", Email: "marketing@renault.se", Website: "www.renault.se", Location: "Stockholm", ContactPerson: "Pierre Laurent - Brand Manager", CompanySize: "50-100 anställda", Notes: "Elbilar och hållbarhet"},
            {Name: "Citroën Sverige", Email: "marketing@citroen.se", Website: "www.citroen.se", Location: "Stockholm", ContactPerson: "Jean Moreau - Kommunikationsansvarig", CompanySize: "20-50 anställda", Notes: "Kreativa bilar och reklamkampanjer"},
            {Name: "Kia Sverige", Email: "marketing@kia.se", Website: "www.kia.se", Location: "Stockholm", ContactPerson: "Kim Park - Marketing Manager", CompanySize: "50-100 anställda", Notes: "Koreanska bilar och events"},
            {Name: "Hyundai Sverige", Email: "marketing@hyundai.se", Website: "www.hyundai.se", Location: "Stockholm", ContactPerson: "Lee Chang - Brand Director", CompanySize: "50-100 anställda", Notes: "Moderna bilar och teknik"},
            {Name: "Mazda Sverige", Email: "marketing@mazda.se", Website: "www.mazda.se", Location: "Stockholm", ContactPerson: "Akira Yamamoto - Marknadsansvarig", CompanySize: "20-50 anställda", Notes: "Japanska bilar och design"},
            {Name: "Subaru Sverige", Email: "marketing@subaru.se", Website: "www.subaru.se", Location: "Stockholm", ContactPerson: "Takeshi Sato - Marketing Manager", CompanySize: "10-20 anställda", Notes: "Fyrhjulsdrift och äventyr"},
            {Name: "Jaguar Land Rover Sverige", Email: "marketing@jlr.se", Website: "www.jaguarlandrover.se", Location: "Stockholm", ContactPerson: "James Smith - Brand Manager", CompanySize: "50-100 anställda", Notes: "Lyxbilar och SUV:ar"},
            {Name: "Tesla Sverige", Email: "marketing@tesla.se", Website: "www.tesla.com/sv_se", Location: "Stockholm", ContactPerson: "Erik Nordström - Marknadschef", CompanySize: "100-200 anställda", Notes: "Elbilar och innovation"},
        },
        "matreklam": {
            {Name: "ICA Maxi", Email: "marketing@ica.se", Website: "www.ica.se", Location: "Stockholm", ContactPerson: "Magnus Eriksson - Butikschef", CompanySize: "500-1000 anställda", Notes: "Butikradio och reklammusik"},
            {Name: "Coop Sverige", Email: "marketing@coop.se", Website: "www.coop.se", Location: "Göteborg", ContactPerson: "Anna Bergström - Kommunikationschef", CompanySize: "500-1000 anställda", Notes: "Matvarukedja och kampanjer"},
            {Name: "Willys", Email: "marketing@willys.se", Website: "www.willys.se", Location: "Malmö", ContactPerson: "Per Nilsson - Marknadsföringschef", CompanySize: "200-500 anställda", Notes: "Lågpriskedja och reklam"},
            {Name: "Hemköp", Email: "marketing@hemkop.se", Website: "www.hemkop.se", Location: "Stockholm", ContactPerson: "Lisa Andersson - Brand Manager", CompanySize: "100-500 anställda", Notes: "Närbutiker och lokalreklam"},
            {Name: "City Gross", Email: "marketing@citygross.se", Website: "www.citygross.se", Location: "Borås", ContactPerson: "Mikael Larsson - Marketing Director", CompanySize: "100-200 anställda", Notes: "Stormarknader och kampanjer"},
            {Name: "Tempo", Email: "marketing@tempo.se", Website: "www.tempo.se", Location: "Stockholm", ContactPerson: "Sara Johansson - Kommunikationsansvarig", CompanySize: "50-100 anställda", Notes: "Lokalbutiker och community"},
            {Name: "Netto", Email: "marketing@netto.se", Website: "www.netto.se", Location: "Malmö", ContactPerson: "Erik Hansen - Marknadsföringschef", CompanySize: "100-200 anställda", Notes: "Dansk lågpriskedja"},
            {Name: "Lidl Sverige", Email: "marketing@lidl.se", Website: "www.lidl.se", Location: "Stockholm", ContactPerson: "Hans Müller - Brand Manager", CompanySize: "200-500 anställda", Notes: "Tysk lågpriskedja och kampanjer"},
            {Name: "Restaurang Frantzén", Email: "marketing@restaurantfrantzen.com", Website: "www.restaurantfrantzen.com", Location: "Stockholm", ContactPerson: "Björn Frantzén - Restaurangchef", CompanySize: "10-50 anställda", Notes: "Gourmetrestaurang och ambiance"},
            {Name: "Max Burgers", Email: "marketing@max.se", Website: "www.max.se", Location: "Malmö", ContactPerson: "Linda Svensson - Varumärkeschef", CompanySize: "200-500 anställda", Notes: "Hamburgare och ljudbranding"},
            {Name: "Espresso House", Email: "marketing@espressohouse.se", Website: "www.espressohouse.se", Location: "Stockholm", ContactPerson: "Coffee Anna - Brand Manager", CompanySize: "200-500 anställda", Notes: "Kaffekedja och atmosfär"},
            {Name: "Wayne's Coffee", Email: "marketing@waynescoffee.se", Website: "www.waynescoffee.se", Location: "Stockholm", ContactPerson: "Wayne Svensson - Franchise Director", CompanySize: "100-200 anställda", Notes: "Svensk kaffekedja och musik"},
            {Name: "Axfood AB", Email: "marketing@axfood.se", Website: "www.axfood.se", Location: "Stockholm", ContactPerson: "Klas Balkow - Marketing Director", CompanySize: "1000+ anställda", Notes: "Mathandelskoncern och butikmusik"},
            {Name: "Arla Foods Sverige", Email: "marketing@arla.se", Website: "www.arla.se", Location: "Stockholm", ContactPerson: "Dairy Manager - Brand Manager", CompanySize: "1000+ anställda", Notes: "Mejeriprodukt och reklam"},
            {Name: "Lantmännen", Email: "marketing@lantmannen.com", Website: "www.lantmannen.com", Location: "Stockholm", ContactPerson: "Grain Manager - Marketing Manager", CompanySize: "1000+ anställda", Notes: "Lantbrukskoncern och kampanjer"},
            {Name: "Orkla Foods Sverige", Email: "marketing@orkla.se", Website: "www.orkla.se", Location: "Stockholm", ContactPerson: "Nordic Food - Brand Director", CompanySize: "500-1000 anställda", Notes: "Nordisk matkoncern"},
            {Name: "Fazer Sverige", Email: "marketing@fazer.se", Website: "www.fazer.se", Location: "Stockholm", ContactPerson: "Finnish Bakery - Marketing Manager", CompanySize: "200-500 anställda", Notes: "Finskt bageri och konditori"},
            {Name: "Felix Sverige", Email: "marketing@felix.se", Website: "www.felix.se", Location: "Eslöv", ContactPerson: "Ketchup King - Marketing Director", CompanySize: "100-200 anställda", Notes: "Ketchup och konserver"},
        },
        "stora-företag": {
            {Name: "H&M Hennes & Mauritz AB", Email: "marketing@hm.com", Website: "www.hm.com", Location: "Stockholm", ContactPerson: "Helena Helmersson - Marknadsföringsdirektör", CompanySize: "1000+ anställda", Notes: "Global modekedja och varumärkesmusik"},
            {Name: "Volvo Group", Email: "marketing@volvogroup.com", Website: "www.volvogroup.com", Location: "Göteborg", ContactPerson: "Martin Lundstedt - Brand Director", CompanySize: "1000+ anställda", Notes: "Lastbilar och industriell musikproduktion"},
            {Name: "Electrolux AB", Email: "marketing@electrolux.com", Website: "www.electrolux.com", Location: "Stockholm", ContactPerson: "Jonas Samuelson - Marketing Manager", CompanySize: "1000+ anställda", Notes: "Vitvaror och reklammusik"},
            {Name: "Ericsson AB", Email: "marketing@ericsson.com", Website: "www.ericsson.com", Location: "Stockholm", ContactPerson: "Börje Ekholm - Communications Director", CompanySize: "1000+ anställda", Notes: "Telekom och teknisk ljudbranding"},
            {Name: "ICA Gruppen AB", Email: "marketing@ica.se", Website: "www.ica.se", Location: "Stockholm", ContactPerson: "Per Strömberg - Brand Manager", CompanySize: "1000+ anställda", Notes: "Detaljhandel och butikmusik"},
            {Name: "Sandvik AB", Email: "marketing@sandvik.com", Website: "www.sandvik.com", Location: "Stockholm", ContactPerson: "Stefan Widing - Marketing Director", CompanySize: "1000+ anställda", Notes: "Verktyg och industriell musik"},
            {Name: "Atlas Copco AB", Email: "marketing@atlascopco.com", Website: "www.atlascopco.com", Location: "Stockholm", ContactPerson: "Mats Rahmström - Brand Director", CompanySize: "1000+ anställda", Notes: "Industriutrustning och företagsmusik"},
            {Name: "SKF AB", Email: "marketing@skf.com", Website: "www.skf.com", Location: "Göteborg", ContactPerson: "Rickard Gustafson - Marketing Manager", CompanySize: "1000+ anställda", Notes: "Kullager och teknisk ljuddesign"},
            {Name: "Swedbank AB", Email: "marketing@swedbank.se", Website: "www.swedbank.se", Location: "Stockholm", ContactPerson: "Jens Henriksson - Brand Manager", CompanySize: "1000+ anställda", Notes: "Bank och finansiell ljudbranding"},
            {Name: "SEB AB", Email: "marketing@seb.se", Website: "www.seb.se", Location: "Stockholm", ContactPerson: "Johan Torgeby - Marketing Director", CompanySize: "1000+ anställda", Notes: "Bank och företagsmusik"},
        },
        "små-företag": {
            {Name: "Norrlands Bryggeri", Email: "marketing@norrlandsbryggeri.se", Website: "www.norrlandsbryggeri.se", Location: "Umeå", ContactPerson: "Magnus Beer - Brand Manager", CompanySize: "10-20 anställda", Notes: "Lokalt bryggeri och eventmusik"},
            {Name: "Kaffebrenneriet Stockholm", Email: "marketing@kaffebrenneriet.se", Website: "www.kaffebrenneriet.se", Location: "Stockholm", ContactPerson: "Coffee Anna - Marketing Manager", CompanySize: "5-10 anställda", Notes: "Specialkaffe och cafémusik"},
            {Name: "Artisan Bageri Göteborg", Email: "marketing@artisanbageri.se", Website: "www.artisanbageri.se", Location: "Göteborg", ContactPerson: "Bread Bob - Owner", CompanySize: "5-10 anställda", Notes: "Hantverksbageri och atmosfärmusik"},
            {Name: "Vintage Design Studio", Email: "marketing@vintagedesign.se", Website: "www.vintagedesign.se", Location: "Malmö", ContactPerson: "Retro Rita - Creative Director", CompanySize: "3-5 anställda", Notes: "Designstudio och kreativ musikproduktion"},
            {Name: "Nordic Wellness Spa", Email: "marketing@nordicwellness.se", Website: "www.nordicwellness.se", Location: "Åre", ContactPerson: "Zen Zara - Spa Manager", CompanySize: "10-20 anställda", Notes: "Wellness och avslappningsmusik"},
            {Name: "Handmade Jewelry Co", Email: "marketing@handmadejewelry.se", Website: "www.handmadejewelry.se", Location: "Visby", ContactPerson: "Gold Gustav - Jeweler", CompanySize: "2-5 anställda", Notes: "Smycken och boutique-musik"},
            {Name: "Farm-to-Table Restaurant", Email: "marketing@farmtotable.se", Website: "www.farmtotable.se", Location: "Lund", ContactPerson: "Organic Olof - Chef", CompanySize: "8-15 anställda", Notes: "Ekologisk restaurang och naturmusik"},
            {Name: "Bicycle Repair Café", Email: "marketing@bicyclerepair.se", Website: "www.bicyclerepair.se", Location: "Uppsala", ContactPerson: "Bike Bengt - Owner", CompanySize: "3-8 anställda", Notes: "Cykelverkstad och workshop-musik"},
            {Name: "Boutique Hotel Småland", Email: "marketing@boutiquehotel.se", Website: "www.boutiquehotel.se", Location: "Växjö", ContactPerson: "Hotel Helena - Manager", CompanySize: "15-25 anställda", Notes: "Boutiquehotell och lounge-musik"},
            {Name: "Local Craft Studio", Email: "marketing@craftsstudio.se", Website: "www.craftsstudio.se", Location: "Falun", ContactPerson: "Craft Carl - Artist", CompanySize: "1-5 anställda", Notes: "Konsthantverk och kreativ miljömusik"},
        },
    })
}
